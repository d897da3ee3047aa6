package triangles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fieldsPerRow is the number of values in one serialized triple.
const fieldsPerRow = 9

// Write emits one row per triple: 9 values formatted with two decimals,
// separated by single spaces, newline-terminated.
func Write(w io.Writer, ts []Triple) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 128)
	for _, t := range ts {
		buf = buf[:0]
		for j, v := range t.Fields() {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'f', 2, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return trianglesErrorf("Write", fmt.Errorf("%w: %w", ErrIO, err))
		}
	}
	if err := bw.Flush(); err != nil {
		return trianglesErrorf("Write", fmt.Errorf("%w: %w", ErrIO, err))
	}

	return nil
}

// WriteFile writes ts to path, creating the parent directory if needed.
func WriteFile(path string, ts []Triple) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return trianglesErrorf("WriteFile", fmt.Errorf("%w: %s: %w", ErrIO, dir, err))
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return trianglesErrorf("WriteFile", fmt.Errorf("%w: %s: %w", ErrIO, path, err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = trianglesErrorf("WriteFile", fmt.Errorf("%w: %s: %w", ErrIO, path, cerr))
		}
	}()

	return Write(f, ts)
}

// Read parses rows written by Write. Blank lines are skipped; any other row
// must hold exactly 9 numbers.
//
// Errors: ErrMalformedRow (with the 1-based line number), ErrIO.
func Read(r io.Reader) ([]Triple, error) {
	var out []Triple
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != fieldsPerRow {
			return nil, trianglesErrorf("Read", fmt.Errorf("%w: line %d has %d fields", ErrMalformedRow, line, len(fields)))
		}
		var vals [fieldsPerRow]float64
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, trianglesErrorf("Read", fmt.Errorf("%w: line %d field %d %q", ErrMalformedRow, line, j+1, f))
			}
			vals[j] = v
		}
		out = append(out, tripleFromFields(vals))
	}
	if err := sc.Err(); err != nil {
		return nil, trianglesErrorf("Read", fmt.Errorf("%w: %w", ErrIO, err))
	}

	return out, nil
}
