package collision

import (
	"testing"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("Base", hash.NameID("Base")))
	require.NoError(t, tr.Track("Walls", hash.NameID("Walls")))
	require.Equal(t, 2, tr.Count())
	require.False(t, tr.HasCollision())

	t.Run("duplicate ignoring case", func(t *testing.T) {
		err := tr.Track("BASE", hash.NameID("BASE"))
		require.ErrorIs(t, err, errs.ErrDuplicateName)
		require.Equal(t, 2, tr.Count())
	})

	t.Run("empty name", func(t *testing.T) {
		require.ErrorIs(t, tr.Track("", 0), errs.ErrEmptyName)
	})
}

func TestTracker_Collision(t *testing.T) {
	tr := NewTracker()

	// Force two different names onto the same id.
	require.NoError(t, tr.Track("Alpha", 42))
	require.NoError(t, tr.Track("Beta", 42))
	require.True(t, tr.HasCollision())
	require.True(t, tr.Contains("alpha", 42))
	require.True(t, tr.Contains("BETA", 42))
	require.False(t, tr.Contains("Gamma", 42))
}

func TestTracker_UntrackAndReset(t *testing.T) {
	tr := NewTracker()
	id := hash.NameID("Base")

	require.NoError(t, tr.Track("Base", id))
	tr.Untrack("base", id)
	require.False(t, tr.Contains("Base", id))
	require.Equal(t, 0, tr.Count())
	require.NoError(t, tr.Track("Base", id))

	tr.Untrack("Unknown", hash.NameID("Unknown"))

	require.NoError(t, tr.Track("A", 1))
	require.NoError(t, tr.Track("B", 1))
	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.False(t, tr.HasCollision())
}
