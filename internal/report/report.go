package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

// Document is the structured form of one calculation.
type Document struct {
	Inputs  kinematics.Params `yaml:"inputs" json:"inputs"`
	Outputs kinematics.Result `yaml:"outputs" json:"outputs"`
}

// Write renders p and r in the given format.
func Write(w io.Writer, f Format, p kinematics.Params, r kinematics.Result) error {
	switch f {
	case FormatText:
		return Text(w, r)
	case FormatStyled:
		return Styled(w, p, r)
	case FormatYAML:
		return YAML(w, p, r)
	case FormatJSON:
		return JSON(w, p, r)
	}
	return fmt.Errorf("unknown format: %s", f)
}

func Text(w io.Writer, r kinematics.Result) error {
	_, err := fmt.Fprintf(w,
		"Corrected New Velocity: %s km/h\nCorrected New Distance: %s km\nCorrected Remaining Fuel: %s kg\n",
		FormatValue(r.Velocity), FormatValue(r.Distance), FormatValue(r.Fuel))
	return err
}

func YAML(w io.Writer, p kinematics.Params, r kinematics.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Inputs: p, Outputs: r}); err != nil {
		return err
	}
	return enc.Close()
}

func JSON(w io.Writer, p kinematics.Params, r kinematics.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Inputs: p, Outputs: r})
}
