// Package commands implements the robustpade subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/taylor"
	"github.com/tuneinsight/robustpade/utils/sampling"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when a command gets no or several coefficient sources.
var ErrNoInput = errors.New("exactly one of --coeffs, --file or --func is required")

// input holds the coefficient source flags shared by the commands.
type input struct {
	coeffs string
	file   string
	fn     string
}

func (in *input) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.coeffs, "coeffs", "", `Taylor coefficients, e.g. "1, 1, 0.5, 2i, 1+2i"`)
	cmd.Flags().StringVar(&in.file, "file", "", "YAML or JSON file with the Taylor coefficients")
	cmd.Flags().StringVar(&in.fn, "func", "", "Catalog function to expand (see 'robustpade functions')")

	_ = cmd.RegisterFlagCompletionFunc("func", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return taylor.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

// load returns the coefficients described by the flags, with the noise of cfg added.
func (in *input) load(cfg *config.Config) ([]complex128, error) {

	var set int
	for _, s := range []string{in.coeffs, in.file, in.fn} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, ErrNoInput
	}

	var coeffs []complex128
	var err error

	switch {
	case in.coeffs != "":
		coeffs, err = ParseCoeffs(in.coeffs)
	case in.file != "":
		coeffs, err = ReadCoeffsFile(in.file)
	default:
		var f *taylor.Function
		if f, err = taylor.Lookup(in.fn); err == nil {
			coeffs, err = taylor.Extract(taylor.Expansion{F: f.Series, X0: complex(cfg.At, 0)}, cfg.Order)
		}
	}

	if err != nil {
		return nil, err
	}

	if cfg.Noise > 0 {
		var prng io.Reader
		if cfg.Seed != "" {
			prng, err = sampling.NewSeededPRNG(cfg.Seed)
		} else {
			// unseeded noise differs between runs
			prng, err = sampling.NewPRNG()
		}
		if err != nil {
			return nil, fmt.Errorf("noise PRNG: %w", err)
		}
		coeffs = taylor.Perturb(coeffs, cfg.Noise, prng)
	}

	return coeffs, nil
}

// ParseCoeffs parses a list of real or complex numbers separated by commas,
// semicolons or spaces. Complex numbers use the Go syntax, e.g. 1+2i or (1-0.5i).
func ParseCoeffs(s string) ([]complex128, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coefficient in %q", s)
	}
	coeffs := make([]complex128, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseComplex(f, 128)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// coeffsDocument is the mapping form of a coefficient file.
type coeffsDocument struct {
	Coeffs []yaml.Node `yaml:"coeffs"`
}

// ReadCoeffsFile reads the coefficients from a YAML (or JSON) file holding
// either a list or a mapping with a "coeffs" list. Each entry is a number, a
// [re, im] pair or a string in the syntax of ParseCoeffs.
func ReadCoeffsFile(path string) ([]complex128, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coefficients: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty document", path)
	}

	var nodes []yaml.Node
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case yaml.MappingNode:
		var d coeffsDocument
		if err := doc.Decode(&d); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		nodes = d.Coeffs
	default:
		return nil, fmt.Errorf("%s: expected a list or a mapping with a coeffs list", path)
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: no coefficient", path)
	}

	coeffs := make([]complex128, len(nodes))
	for i := range nodes {
		if coeffs[i], err = decodeCoeff(&nodes[i]); err != nil {
			return nil, fmt.Errorf("%s: coefficient %d (line %d): %w", path, i, nodes[i].Line, err)
		}
	}

	return coeffs, nil
}

func decodeCoeff(n *yaml.Node) (complex128, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float64
		if n.Tag == "!!int" || n.Tag == "!!float" {
			if err := n.Decode(&f); err != nil {
				return 0, err
			}
			return complex(f, 0), nil
		}
		return strconv.ParseComplex(n.Value, 128)
	case yaml.SequenceNode:
		var pair []float64
		if err := n.Decode(&pair); err != nil {
			return 0, err
		}
		if len(pair) != 2 {
			return 0, fmt.Errorf("expected a [re, im] pair but got %d values", len(pair))
		}
		return complex(pair[0], pair[1]), nil
	default:
		return 0, fmt.Errorf("expected a number, a string or a [re, im] pair")
	}
}
