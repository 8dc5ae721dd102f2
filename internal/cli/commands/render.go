package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tuneinsight/robustpade/internal/cli/config"
	"github.com/tuneinsight/robustpade/pade"
)

// report is the output of a command: a table for the text and markdown
// formats and a value for the json format.
type report struct {
	title  string
	header table.Row
	rows   []table.Row
	footer string
	value  any
}

func render(w io.Writer, format string, r *report) error {
	if format == config.OutputJSON {
		return renderJSON(w, r.value)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if r.header != nil {
		t.AppendHeader(r.header)
	}
	t.AppendRows(r.rows)

	// go-pretty wraps table titles to the table width.
	if format == config.OutputMarkdown {
		if r.title != "" {
			_, _ = fmt.Fprintf(w, "### %s\n\n", r.title)
		}
		t.RenderMarkdown()
	} else {
		if r.title != "" {
			_, _ = fmt.Fprintln(w, r.title)
		}
		t.Render()
	}

	if r.footer != "" {
		_, _ = fmt.Fprintln(w, r.footer)
	}
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonComplex is the JSON form of a complex number, which encoding/json does not support.
type jsonComplex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func toJSONComplex(v []complex128) []jsonComplex {
	out := make([]jsonComplex, len(v))
	for i, c := range v {
		out[i] = jsonComplex{Re: real(c), Im: imag(c)}
	}
	return out
}

type jsonApproximant struct {
	Requested   pade.Degree   `json:"requested"`
	Degree      pade.Degree   `json:"degree"`
	Reduced     bool          `json:"reduced"`
	Real        bool          `json:"real"`
	Numerator   []jsonComplex `json:"numerator"`
	Denominator []jsonComplex `json:"denominator"`
	Poles       []jsonComplex `json:"poles,omitempty"`
	Residues    []jsonComplex `json:"residues,omitempty"`
}

func newJSONApproximant(a *pade.Approximant) *jsonApproximant {
	return &jsonApproximant{
		Requested:   a.Requested,
		Degree:      a.Degree,
		Reduced:     a.Reduced(),
		Real:        a.Real,
		Numerator:   toJSONComplex(a.Numerator),
		Denominator: toJSONComplex(a.Denominator),
	}
}

func formatComplex(c complex128, realOnly bool) string {
	if realOnly || imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', 16, 64)
	}
	return strconv.FormatComplex(c, 'g', 16, 128)
}

func formatDegree(d *pade.Degree) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
