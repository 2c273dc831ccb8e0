package export_test

import (
	"errors"
	"image/png"
	"testing"

	"github.com/iburimskiy/waf-visualization/internal/export"
	"github.com/iburimskiy/waf-visualization/internal/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gopkg.in/src-d/go-billy.v4/memfs"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "a.png", export.Path("a"))
	assert.Equal(t, "a.png", export.Path("a.png"))
	assert.Equal(t, "dir/A.PNG", export.Path("dir/A.PNG"))
	assert.Equal(t, "a.jpg.png", export.Path("a.jpg"))
}

func TestSave(t *testing.T) {
	fs := memfs.New()
	store := &export.Store{Filesystem: fs}
	fig, err := figure.Heatmap()
	require.NoError(t, err)

	require.NoError(t, store.Save("out/heatmap", fig))

	f, err := fs.Open("out/heatmap.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
	assert.Equal(t, "heatmap.png", entries[0].Name())
}

func TestSave_Overwrite(t *testing.T) {
	fs := memfs.New()
	store := &export.Store{Filesystem: fs}
	fig, err := figure.DBHeatmap()
	require.NoError(t, err)

	require.NoError(t, store.Save("out/db.png", fig))
	require.NoError(t, store.Save("out/db.png", fig))

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_EmptyName(t *testing.T) {
	store := &export.Store{Filesystem: memfs.New()}
	err := store.Save("", &figure.Figure{})
	assert.True(t, errors.Is(err, export.ErrEmptyName))
}

func TestSave_RenderFailureCleansUp(t *testing.T) {
	fs := memfs.New()
	store := &export.Store{Filesystem: fs}
	empty := &figure.Figure{Rows: 1, Cols: 1, Width: vg.Inch, Height: vg.Inch}

	err := store.Save("out/broken", empty)
	assert.True(t, errors.Is(err, figure.ErrEmptyFigure), "err = %v", err)

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
