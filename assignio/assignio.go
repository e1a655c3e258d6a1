package assignio

import (
	"bytes"
	"compress/bzip2"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
)

// WriteAssignment zstd-compresses and writes tree's full assignment array
// (every height, leaf-first) to path, using VoidSentinel for any slot
// whose pool vector is nil.
func WriteAssignment(path string, tree *quadtree.QuadAssignmentTree) error {
	raw, err := encodeAssignment(tree)
	if err != nil {
		return err
	}
	compressed, err := zstdCompress(raw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("assignio: writing %s: %w", path, err)
	}
	return nil
}

func encodeAssignment(tree *quadtree.QuadAssignmentTree) ([]byte, error) {
	var buf bytes.Buffer
	for h := 0; h < tree.Depth(); h++ {
		bounds, _ := tree.Bounds(h)
		for i := 0; i < bounds.Len(); i++ {
			pos := geometry.CellPosition{Height: h, Index: i}
			v, _ := tree.GetValue(pos)
			var word uint32
			if v == nil {
				word = VoidSentinel
			} else {
				idx, _ := tree.GetAssignmentValue(pos)
				word = uint32(idx)
			}
			if err := binary.Write(&buf, binary.LittleEndian, word); err != nil {
				return nil, fmt.Errorf("assignio: encoding: %w", err)
			}
		}
	}
	return buf.Bytes(), nil
}

// ReadAssignmentWords decodes a raw (already decompressed) assignment
// payload into its flat uint32 words, in file order.
func ReadAssignmentWords(raw []byte) ([]uint32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("assignio: payload length %d is not a multiple of 4", len(raw))
	}
	words := make([]uint32, len(raw)/4)
	r := bytes.NewReader(raw)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return nil, fmt.Errorf("assignio: decoding: %w", err)
		}
	}
	return words, nil
}

// ReadLegacyBzip2 decompresses a .raw.bz2 assignment or data file written
// by the original tool. The standard library only implements a bzip2
// reader, so this is read-only; new output is always zstd-compressed via
// WriteAssignment instead.
func ReadLegacyBzip2(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assignio: opening %s: %w", path, err)
	}
	defer f.Close()
	raw, err := io.ReadAll(bzip2.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("assignio: decompressing %s: %w", path, err)
	}
	return raw, nil
}

// WriteDisparities zstd-compresses and writes a disparity vector (one
// float64 per tree cell, in the same flat order as an assignment file) to
// path.
func WriteDisparities(path string, disparities []float64) error {
	var buf bytes.Buffer
	for _, d := range disparities {
		if err := binary.Write(&buf, binary.LittleEndian, d); err != nil {
			return fmt.Errorf("assignio: encoding disparities: %w", err)
		}
	}
	compressed, err := zstdCompress(buf.Bytes())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("assignio: writing %s: %w", path, err)
	}
	return nil
}

// WriteWords zstd-compresses and writes an already-computed flat uint32
// assignment (e.g. from RemapToNearestLeaf) to path, in the same layout
// WriteAssignment produces from a tree directly.
func WriteWords(path string, words []uint32) error {
	var buf bytes.Buffer
	for _, w := range words {
		if err := binary.Write(&buf, binary.LittleEndian, w); err != nil {
			return fmt.Errorf("assignio: encoding words: %w", err)
		}
	}
	compressed, err := zstdCompress(buf.Bytes())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("assignio: writing %s: %w", path, err)
	}
	return nil
}

func zstdCompress(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("assignio: creating zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

// zstdDecompress reverses zstdCompress; ReadAssignment uses it to read
// back a previously-written assignment file.
func zstdDecompress(compressed []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("assignio: creating zstd decoder: %w", err)
	}
	defer dec.Close()
	return dec.DecodeAll(compressed, nil)
}

// ReadAssignment decompresses a zstd-written assignment file and returns
// its flat uint32 words.
func ReadAssignment(path string) ([]uint32, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assignio: reading %s: %w", path, err)
	}
	raw, err := zstdDecompress(compressed)
	if err != nil {
		return nil, err
	}
	return ReadAssignmentWords(raw)
}
