package byteiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/bytekit/pkg/byteiter"
)

func TestRange(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		From, To byte
	}{
		"from equals to":       {From: 5, To: 5},
		"from greater than to": {From: 200, To: 3},
		"single element":       {From: 0, To: 1},
		"small interval":       {From: 10, To: 20},
		"upper edge":           {From: 250, To: 255},
		"whole domain":         {From: 0, To: 255},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			it := byteiter.Range(tc.From, tc.To)
			if tc.From >= tc.To {
				require.True(t, it == byteiter.Empty())
				require.False(t, it.HasNext())
				return
			}

			got, err := byteiter.Collect(it)
			require.NoError(t, err)
			require.Len(t, got, int(tc.To)-int(tc.From))
			require.Equal(t, tc.From, got[0])
			require.Equal(t, tc.To-1, got[len(got)-1])
			for i := 1; i < len(got); i++ {
				require.Equal(t, got[i-1]+1, got[i])
			}
		})
	}
}

func TestRange_exhausted_readsKeepFailing(t *testing.T) {
	t.Parallel()

	it := byteiter.Range(254, 255)
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, byte(254), *v)

	for i := 0; i < 3; i++ {
		require.False(t, it.HasNext())
		_, err := it.NextByte()
		require.ErrorIs(t, err, byteiter.ErrExhausted)
	}
	require.ErrorIs(t, it.Remove(), byteiter.ErrUnsupported)
}
