package rawdata_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/rawdata"
)

func TestLoadDenseFloat32(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.raw")

	var buf bytes.Buffer
	values := []float32{1, 2, 3, 4}
	for _, v := range values {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, math.Float32bits(v)))
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	vectors, err := rawdata.LoadDense(path, 2, 2, 32)
	require.NoError(t, err)
	assert.Equal(t, float64(1), vectors[0][0])
	assert.Equal(t, float64(4), vectors[1][1])
}

func TestLoadDenseTruncated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.raw")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
	_, err := rawdata.LoadDense(path, 10, 3, 32)
	assert.ErrorIs(t, err, rawdata.ErrTruncated)
}

func TestDetectBitWidth(t *testing.T) {
	// 4 values: 16 bytes reads as float32, 32 bytes as float64.
	width, err := rawdata.DetectBitWidth(16, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 32, width)

	width, err = rawdata.DetectBitWidth(32, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 64, width)

	_, err = rawdata.DetectBitWidth(15, 2, 2)
	assert.ErrorIs(t, err, rawdata.ErrTruncated)
}

func TestGenerateUniformRGBDataCorners(t *testing.T) {
	data := rawdata.GenerateUniformRGBData(4, 4)
	require.Len(t, data, 16)
	assert.Equal(t, float64(0), data[0][0], "top-left has r=0")
	topRight := data[3]
	assert.Equal(t, float64(255), topRight[0], "top-right column maxes out red")
}
