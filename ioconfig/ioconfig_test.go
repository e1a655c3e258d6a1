package ioconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/ioconfig"
)

func TestSaveLoadInputConfigurationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg := ioconfig.InputConfiguration{
		Type: ioconfig.TypeData,
		Grid: ioconfig.GridShape{Rows: 4, Columns: 4},
		Data: ioconfig.DataSection{Length: 16, Path: "data.raw", Dimensions: ioconfig.DataDimensions{X: 3, Y: 1, Z: 1}},
	}
	require.NoError(t, ioconfig.SaveInputConfiguration(path, cfg))

	got, err := ioconfig.LoadInputConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidateRejectsUnknownType(t *testing.T) {
	cfg := ioconfig.InputConfiguration{Type: "bogus", Grid: ioconfig.GridShape{Rows: 1, Columns: 1}, Data: ioconfig.DataSection{Length: 1, Path: "x"}}
	assert.ErrorIs(t, cfg.Validate(), ioconfig.ErrUnknownType)
}

func TestValidateRejectsEmptyGrid(t *testing.T) {
	cfg := ioconfig.InputConfiguration{Type: ioconfig.TypeData, Data: ioconfig.DataSection{Length: 1, Path: "x"}}
	assert.ErrorIs(t, cfg.Validate(), ioconfig.ErrInvalidConfig)
}

func TestValidateRejectsGridTooSmallForData(t *testing.T) {
	cfg := ioconfig.InputConfiguration{
		Type: ioconfig.TypeData,
		Grid: ioconfig.GridShape{Rows: 2, Columns: 2},
		Data: ioconfig.DataSection{Length: 5, Path: "x"},
	}
	assert.ErrorIs(t, cfg.Validate(), ioconfig.ErrGridTooSmall)
}
