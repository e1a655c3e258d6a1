package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
)

// SaveHeightPNG renders height's grid as an RGB PNG at path, mapping each
// cell's first three vector components directly to R, G, B (clamped to
// [0, 255]); void cells render as black.
func SaveHeightPNG(path string, tree *quadtree.QuadAssignmentTree, height int) error {
	bounds, ok := tree.Bounds(height)
	if !ok {
		return fmt.Errorf("imaging: height %d out of range", height)
	}
	if tree.ElemLen() < 3 {
		return ErrElemLenTooShort
	}

	img := image.NewRGBA(image.Rect(0, 0, bounds.Dims.Cols, bounds.Dims.Rows))
	for row := 0; row < bounds.Dims.Rows; row++ {
		for col := 0; col < bounds.Dims.Cols; col++ {
			idx := geometry.RowMajorIndex(row, col, bounds.Dims.Cols)
			v, _ := tree.GetValue(geometry.CellPosition{Height: height, Index: idx})
			var c color.RGBA
			if v == nil {
				c = color.RGBA{A: 255}
			} else {
				c = color.RGBA{R: clamp8(v[0]), G: clamp8(v[1]), B: clamp8(v[2]), A: 255}
			}
			img.SetRGBA(col, row, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imaging: encoding %s: %w", path, err)
	}
	return nil
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
