package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// rawTable is the untyped result of parsing one source file: a header and
// string-valued rows, before any coercion or cleanup.
type rawTable struct {
	columns []string
	colIdx  map[string]int
	rows    [][]string
}

func newRawTable(columns []string) *rawTable {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &rawTable{columns: columns, colIdx: idx}
}

// hasColumn reports whether the table carries the named column.
func (t *rawTable) hasColumn(name string) bool {
	_, ok := t.colIdx[name]
	return ok
}

// cell returns the raw string value of a column in a row, "" if the column is
// absent or the row is short.
func (t *rawTable) cell(row []string, name string) string {
	i, ok := t.colIdx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseCSV reads a delimited-text source into a raw table. Rows shorter or
// longer than the header are tolerated; missing cells read as empty.
func parseCSV(r io.Reader) (*rawTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	table := newRawTable(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		table.rows = append(table.rows, record)
	}

	return table, nil
}

// parseJSON reads an array of flat objects into a raw table. The column set is
// the union of keys across all objects; scalar values are stringified so the
// normalizer sees the same shape as a CSV source.
func parseJSON(r io.Reader) (*rawTable, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON records: %w", err)
	}

	var columns []string
	seen := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	table := newRawTable(columns)
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = stringifyCell(rec[col])
		}
		table.rows = append(table.rows, row)
	}

	return table, nil
}

func stringifyCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
