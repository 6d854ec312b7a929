package puzzle

import (
	"fmt"
	"io"
	"strings"

	"github.com/fieldrow/strawberryfields/internal/model"
)

// WriteSolution appends one puzzle's covering block: cardinality, cost, a
// '=' rule as wide as the field, the labeled rows, and a trailing blank
// line.
func WriteSolution(w io.Writer, s *model.Solution) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Cardinality:%d\n", s.Cardinality())
	fmt.Fprintf(&b, "Cost:%d\n", s.TotalCost())
	b.WriteString(strings.Repeat("=", s.FieldCols))
	b.WriteByte('\n')
	for _, row := range s.Render() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTotal appends the closing total-cost line for a whole run.
func WriteTotal(w io.Writer, total int) error {
	_, err := fmt.Fprintf(w, "Total Cost: %d\n", total)
	return err
}
