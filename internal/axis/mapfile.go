package axis

import (
	"bufio"
	"fmt"
	"io"
)

// lineFormat is the mapping file record grammar, one record per line.
const lineFormat = "axis %d: min = %d, max = %d"

// WriteTo emits one mapping line per present axis, in ascending axis
// order. Axes that are not present produce no line.
func (t *Table) WriteTo(w io.Writer) error {
	for code := FirstAxis; code <= LastAxis; code++ {
		r := t.at(code)
		if !r.Present {
			continue
		}
		if _, err := fmt.Fprintf(w, lineFormat+"\n", code, r.Min, r.Max); err != nil {
			return fmt.Errorf("writing line for axis %d: %w", code, err)
		}
	}
	return nil
}

// ReadFrom populates the table from mapping lines. Each well-formed
// record marks its axis present with the recorded bounds. Lines that do
// not match the record grammar, including records naming an axis outside
// the tracked span, are skipped rather than failing the whole file; the
// count of skipped lines is returned so callers can surface a warning.
// Reaching end of input is not an error.
func (t *Table) ReadFrom(r io.Reader) (int, error) {
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var (
			code     int
			min, max uint32
		)
		n, err := fmt.Sscanf(sc.Text(), lineFormat, &code, &min, &max)
		if err != nil || n != 3 {
			skipped++
			continue
		}
		if code < int(FirstAxis) || code > int(LastAxis) {
			skipped++
			continue
		}
		*t.at(uint16(code)) = Range{Present: true, Min: min, Max: max}
	}
	if err := sc.Err(); err != nil {
		return skipped, fmt.Errorf("reading mapping: %w", err)
	}
	return skipped, nil
}
