package InputParameters

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manifestFile = []byte(`
########################################
Title: "Test Batch"
MaxDistance: 0.5
Conversions:
  - Input: rawModels/sedanPoly.objm
    Output: models/sedan.objm
  - Input: rawModels/busPoly.objm   # second model
    Output: models/bus.objm
########################################
`)

func TestBatchParameters(t *testing.T) {
	var bp BatchParameters
	require.NoError(t, bp.Parse(manifestFile))
	require.NoError(t, bp.Validate())
	assert.Equal(t, "Test Batch", bp.Title)
	assert.Equal(t, 0.5, bp.MaxDistance)
	require.Len(t, bp.Conversions, 2)
	assert.Equal(t, Conversion{Input: "rawModels/busPoly.objm", Output: "models/bus.objm"}, bp.Conversions[1])

	var buf bytes.Buffer
	bp.Print(&buf)
	assert.Contains(t, buf.String(), "\"Test Batch\"")
	assert.Contains(t, buf.String(), "0.50000")
	assert.Contains(t, buf.String(), "Conversions[1] = rawModels/busPoly.objm -> models/bus.objm")
}

func TestBatchParametersValidate(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		valid    bool
	}{
		{name: "no max distance uses default", manifest: "Conversions:\n  - {Input: a.objm, Output: b.objm}\n", valid: true},
		{name: "no conversions", manifest: "Title: empty\nMaxDistance: 1\n"},
		{name: "missing output", manifest: "Conversions:\n  - Input: a.objm\n"},
		{name: "output equals input", manifest: "Conversions:\n  - {Input: a.objm, Output: a.objm}\n"},
		{name: "negative max distance", manifest: "MaxDistance: -2\nConversions:\n  - {Input: a.objm, Output: b.objm}\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var bp BatchParameters
			require.NoError(t, bp.Parse([]byte(tc.manifest)))
			if tc.valid {
				assert.NoError(t, bp.Validate())
			} else {
				assert.Error(t, bp.Validate())
			}
		})
	}
}

func TestDefaultBatch(t *testing.T) {
	bp := DefaultBatch()
	require.NoError(t, bp.Validate())
	assert.Equal(t, 0.75, bp.MaxDistance)
	require.Len(t, bp.Conversions, 5)
	assert.Equal(t, Conversion{Input: "rawModels/sedanPoly.objm", Output: "models/sedan.objm"}, bp.Conversions[0])
	assert.Equal(t, Conversion{Input: "rawModels/minivanPoly.objm", Output: "models/minivan.objm"}, bp.Conversions[3])
	assert.Equal(t, Conversion{Input: "rawModels/busPoly.objm", Output: "models/bus.objm"}, bp.Conversions[4])
}

func TestReadBatchFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "batch.yaml", manifestFile, 0644))
	bp, err := ReadBatchFile(fs, "batch.yaml")
	require.NoError(t, err)
	assert.Len(t, bp.Conversions, 2)

	_, err = ReadBatchFile(fs, "missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("Conversions: [\n"), 0644))
	_, err = ReadBatchFile(fs, "bad.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "empty.yaml", []byte("Title: nothing\n"), 0644))
	_, err = ReadBatchFile(fs, "empty.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty.yaml")
}
