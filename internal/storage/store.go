package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/trajviz/internal/dynamo"
)

// Options controls how cells that are not numbers are treated.
type Options struct {
	// Strict turns unparsable cells into a *dynamo.ParseError. Otherwise they
	// are read as NaN, the way numpy's genfromtxt fills them.
	Strict bool
	Logger *slog.Logger
}

// Load reads a comma-delimited frame table from path.
func Load(path string, opts Options) (*dynamo.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("loaded frame table", "path", path, "rows", t.Len(), "columns", strings.Join(t.Columns, ","))
	}
	return t, nil
}

// Read parses a frame table. The first non-blank line is the header and may
// start with '#'; later lines starting with '#' are skipped.
func Read(r io.Reader, opts Options) (*dynamo.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dynamo.ErrNoHeader
		}
		return nil, err
	}
	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(strings.TrimSpace(name), "#")
		}
		columns[i] = strings.TrimSpace(name)
	}

	t := dynamo.NewTable(columns)
	invalid := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(record) != len(columns) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", line, len(columns), len(record))
		}

		state := make(dynamo.State, len(record))
		for j, cell := range record {
			cell = strings.TrimSpace(cell)
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				if opts.Strict {
					return nil, &dynamo.ParseError{Line: line, Column: columns[j], Value: cell, Wrapped: err}
				}
				v = math.NaN()
			}
			state[j] = v
		}
		if !state.IsValid() {
			invalid++
		}
		t.Rows = append(t.Rows, state)
	}

	if invalid > 0 && opts.Logger != nil {
		opts.Logger.Warn("rows with missing or non-finite values", "rows", invalid)
	}
	return t, nil
}

// WriteTable writes t as CSV with a header row.
func WriteTable(w io.Writer, t *dynamo.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, state := range t.Rows {
		row := make([]string, len(state))
		for j, val := range state {
			row[j] = strconv.FormatFloat(val, 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
