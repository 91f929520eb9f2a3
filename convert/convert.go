package convert

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/objnorm/InputParameters"
	"github.com/notargets/objnorm/normalize"
	"github.com/notargets/objnorm/readfiles"
	"github.com/notargets/objnorm/types"
)

// Converter runs the read, normalize and write steps for each pair of a batch
type Converter struct {
	Fs          afero.Fs
	Logger      *log.Logger // Nil logs through log.Default()
	MaxDistance float64 // Zero defers to the manifest, then to normalize.DefaultMaxDistance
	DryRun      bool    // Read and normalize only, nothing is written
}

func NewConverter(fs afero.Fs, logger *log.Logger, maxDistance float64) *Converter {
	return &Converter{
		Fs:          fs,
		Logger:      logger,
		MaxDistance: maxDistance,
	}
}

// Convert normalizes the mesh in inFile and writes it to outFile
func (c *Converter) Convert(inFile, outFile string) error {
	return c.convert(inFile, outFile, c.maxDistance(0))
}

// Run converts every pair in order and stops at the first failure
func (c *Converter) Run(conversions []InputParameters.Conversion) error {
	return c.run(conversions, c.maxDistance(0))
}

// RunBatch converts the pairs of a manifest, using its MaxDistance when the Converter has none
func (c *Converter) RunBatch(bp *InputParameters.BatchParameters) error {
	md := c.maxDistance(bp.MaxDistance)
	c.logger().Debug("batch", "title", bp.Title, "maxDistance", md,
		"conversions", len(bp.Conversions))
	return c.run(bp.Conversions, md)
}

func (c *Converter) run(conversions []InputParameters.Conversion, maxDistance float64) error {
	for _, conv := range conversions {
		if err := c.convert(conv.Input, conv.Output, maxDistance); err != nil {
			return fmt.Errorf("converting %s -> %s: %w", conv.Input, conv.Output, err)
		}
	}
	return nil
}

func (c *Converter) convert(inFile, outFile string, maxDistance float64) (err error) {
	var (
		ms        *types.MeshSnapshot
		normVerts []r3.Vec
	)
	if ms, err = readfiles.ReadObjm(c.Fs, inFile); err != nil {
		return
	}
	c.logger().Debug("read", "file", inFile, "mesh", ms.String())
	if normVerts, err = normalize.Normalize(ms.Vertices, maxDistance); err != nil {
		return fmt.Errorf("%s: %w", inFile, err)
	}
	out := ms.WithVertices(normVerts)
	if c.DryRun {
		c.logger().Info("dry run", "file", outFile, "mesh", out.String())
		return
	}
	if err = readfiles.WriteObjm(c.Fs, outFile, out); err != nil {
		return
	}
	c.logger().Info("wrote", "file", outFile)
	return
}

func (c *Converter) maxDistance(fromManifest float64) float64 {
	switch {
	case c.MaxDistance != 0:
		return c.MaxDistance
	case fromManifest != 0:
		return fromManifest
	}
	return normalize.DefaultMaxDistance
}

func (c *Converter) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
