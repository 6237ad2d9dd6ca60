package integer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConcurrentUse(t *testing.T) {
	x := MustParse("5819083357103")
	y := MustParse("-4564982376583")
	want := x.Mul(y)

	var g errgroup.Group
	results := make([]Int, 64)

	for i := range results {
		i := i

		g.Go(func() error {
			q, err := x.Mul(y).Sub(FromInt64(int64(i))).Quo(y)
			if err != nil {
				return err
			}

			results[i] = q.Mul(y)

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for i, r := range results {
		// Truncation toward zero drops i since i < |y|.
		require.Equal(t, want, r, "goroutine %d", i)
	}

	require.Equal(t, "5819083357103", x.String())
	require.Equal(t, "-4564982376583", y.String())
}
