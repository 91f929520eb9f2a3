package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// Conversion is one input/output pair of a batch
type Conversion struct {
	Input  string `json:"Input" validate:"required"`
	Output string `json:"Output" validate:"required,nefield=Input"`
}

// Parameters obtained from the YAML batch manifest
type BatchParameters struct {
	Title       string       `json:"Title"`
	MaxDistance float64      `json:"MaxDistance" validate:"gte=0"` // Zero selects the default bound
	Conversions []Conversion `json:"Conversions" validate:"required,min=1,dive"`
}

// DefaultBatch is the built-in set of vehicle models
func DefaultBatch() *BatchParameters {
	bp := &BatchParameters{
		Title:       "Vehicle models",
		MaxDistance: 0.75,
	}
	for _, model := range []string{"sedan", "pickup", "suv", "minivan", "bus"} {
		bp.Conversions = append(bp.Conversions, Conversion{
			Input:  "rawModels/" + model + "Poly.objm",
			Output: "models/" + model + ".objm",
		})
	}
	return bp
}

// ReadBatchFile reads and validates a manifest
func ReadBatchFile(fs afero.Fs, filename string) (bp *BatchParameters, err error) {
	var (
		data []byte
	)
	if data, err = afero.ReadFile(fs, filename); err != nil {
		return nil, fmt.Errorf("unable to read manifest %s: %w", filename, err)
	}
	bp = &BatchParameters{}
	if err = bp.Parse(data); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}
	if err = bp.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}
	return
}

// ghodss/yaml converts to JSON first, so field names come from the json tags
func (bp *BatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BatchParameters) Validate() error {
	return validator.New().Struct(bp)
}

func (bp *BatchParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", bp.Title)
	fmt.Fprintf(w, "%8.5f\t\t= MaxDistance\n", bp.MaxDistance)
	fmt.Fprintf(w, "[%d]\t\t\t= Conversions\n", len(bp.Conversions))
	for i, c := range bp.Conversions {
		fmt.Fprintf(w, "Conversions[%d] = %s -> %s\n", i, c.Input, c.Output)
	}
}
