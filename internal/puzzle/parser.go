// Package puzzle reads and writes the text formats of the covering solver:
// puzzle files of cardinality lines and strawberry field rows, and the
// labeled covering output.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fieldrow/strawberryfields/internal/model"
)

// MaxGridDim bounds both field dimensions.
const MaxGridDim = 50

// Puzzle is one parsed input block: the cardinality bound and the field.
type Puzzle struct {
	MaxGreenhouses int
	Field          *model.Field
}

// Parse decodes a puzzle stream. Each puzzle is a line starting with a
// decimal digit giving the greenhouse bound, plus one or more field rows of
// '.' and '@', ended by a blank line or end of input. A trailing puzzle
// without a blank terminator is still returned. When a puzzle carries more
// than one cardinality line, the last one wins.
func Parse(r io.Reader) ([]Puzzle, error) {
	var (
		puzzles []Puzzle
		rows    [][]int
		maxG    = -1
		lineNo  int
	)

	flush := func() error {
		if len(rows) == 0 && maxG < 0 {
			return nil
		}
		if len(rows) == 0 {
			return fmt.Errorf("puzzle ending at line %d has no field rows", lineNo)
		}
		if maxG < 0 {
			return fmt.Errorf("puzzle ending at line %d is missing its cardinality line", lineNo)
		}
		f, err := model.NewField(rows)
		if err != nil {
			return fmt.Errorf("puzzle ending at line %d: %w", lineNo, err)
		}
		puzzles = append(puzzles, Puzzle{MaxGreenhouses: maxG, Field: f})
		rows = nil
		maxG = -1
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case line[0] >= '0' && line[0] <= '9':
			maxG = leadingInt(line)
		default:
			row, err := parseFieldRow(line, lineNo)
			if err != nil {
				return nil, err
			}
			if len(rows) > 0 && len(row) != len(rows[0]) {
				return nil, fmt.Errorf("line %d: field row has %d columns, expected %d",
					lineNo, len(row), len(rows[0]))
			}
			if len(rows) == MaxGridDim {
				return nil, fmt.Errorf("line %d: field exceeds %d rows", lineNo, MaxGridDim)
			}
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle stream: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return puzzles, nil
}

// leadingInt parses the decimal run at the start of line; the first
// character is known to be a digit.
func leadingInt(line string) int {
	n := 0
	for _, ch := range line {
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

func parseFieldRow(line string, lineNo int) ([]int, error) {
	if len(line) > MaxGridDim {
		return nil, fmt.Errorf("line %d: field exceeds %d columns", lineNo, MaxGridDim)
	}
	row := make([]int, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '.':
		case '@':
			row[i] = 1
		default:
			return nil, fmt.Errorf("line %d: unrecognized cell character %q at column %d",
				lineNo, line[i], i+1)
		}
	}
	return row, nil
}
