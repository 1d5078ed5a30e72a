package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		require.NotNil(t, spill)
		defer spill.Close()

		assert.Equal(t, dir, filepath.Dir(spill.Path()))
		assert.Contains(t, filepath.Base(spill.Path()), "ridge-spill-")

		_, err = os.Stat(spill.Path())
		require.NoError(t, err)
	})

	t.Run("NewFileSpill creates missing dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "spill")

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		assert.Equal(t, dir, filepath.Dir(spill.Path()))
	})

	t.Run("Range returns items in append order", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("GATTGT"))
		require.NoError(t, spill.AppendBatch([]string{"GAATGT", "GACTGC"}))

		var got []string
		var indices []uint64

		err = spill.Range(func(index uint64, item string) error {
			indices = append(indices, index)
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"GATTGT", "GAATGT", "GACTGC"}, got)
		assert.Equal(t, []uint64{0, 1, 2}, indices)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())

		require.NoError(t, spill.AppendBatch([]int{2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range can be called twice and after more appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2}))

		sum := 0
		require.NoError(t, spill.Range(func(_ uint64, item int) error {
			sum += item
			return nil
		}))
		assert.Equal(t, 3, sum)

		require.NoError(t, spill.Append(4))

		sum = 0
		require.NoError(t, spill.Range(func(_ uint64, item int) error {
			sum += item
			return nil
		}))
		assert.Equal(t, 7, sum)
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		seen := 0

		err = spill.Range(func(_ uint64, _ int) error {
			seen++
			if seen == 2 {
				return stop
			}

			return nil
		})
		require.ErrorIs(t, err, stop)
		assert.Equal(t, 2, seen)
	})

	t.Run("Close removes the file and is idempotent", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())

		_, err = os.Stat(spill.Path())
		require.True(t, errors.Is(err, os.ErrNotExist))

		require.NoError(t, spill.Close())
		require.Error(t, spill.Append(2))
		require.Error(t, spill.Range(func(uint64, int) error { return nil }))
	})

	t.Run("struct items round trip", func(t *testing.T) {
		type entry struct {
			Sequence string
			Count    int
		}

		spill, err := NewFileSpill[entry](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		want := []entry{{"GAT", 1}, {"GAA", 2}}
		require.NoError(t, spill.AppendBatch(want))

		var got []entry
		require.NoError(t, spill.Range(func(_ uint64, item entry) error {
			got = append(got, item)
			return nil
		}))
		assert.Equal(t, want, got)
	})
}
