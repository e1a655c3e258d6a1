package imaging_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/imaging"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

func TestSaveHeightPNGWritesValidPNG(t *testing.T) {
	data := []vecmath.Vector{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 10, 10}}
	tr, err := quadtree.New(2, 2, 1, data, quadtree.ParentMean)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "height0.png")
	require.NoError(t, imaging.SaveHeightPNG(path, tr, 0))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestSaveHeightPNGRejectsShortVectors(t *testing.T) {
	data := []vecmath.Vector{{1}, {2}}
	tr, err := quadtree.New(1, 2, 1, data, quadtree.ParentMean)
	require.NoError(t, err)
	err = imaging.SaveHeightPNG(t.TempDir()+"/x.png", tr, 0)
	assert.ErrorIs(t, err, imaging.ErrElemLenTooShort)
}
