package catalog

import (
	"encoding/csv"
	"os"

	"github.com/vermeulendivan/s2prep/util"
)

// namedColumn matches a canonical column name to its index in a catalog header
type namedColumn struct {
	index int
	key   string
}

// columnMap matches catalog column names to their header positions, so rows
// can be read by name regardless of column order
type columnMap struct {
	entries []namedColumn
}

func newColumnMap(names []string, headerRow []string) (columnMap, error) {
	inverse := make(map[string]int, len(headerRow))
	for idx, name := range headerRow {
		inverse[name] = idx
	}

	entries := make([]namedColumn, len(names))
	for idx, name := range names {
		columnIndex, ok := inverse[name]
		if !ok {
			return columnMap{}, util.NotFound("No such catalog column: " + name)
		}
		entries[idx] = namedColumn{columnIndex, name}
	}
	return columnMap{entries: entries}, nil
}

// valueMap populates a name → value map from one raw CSV row
func (m columnMap) valueMap(rawValues []string) map[string]string {
	values := make(map[string]string, len(m.entries))
	for _, namedCol := range m.entries {
		values[namedCol.key] = rawValues[namedCol.index]
	}
	return values
}

// Validate re-reads a catalog file and counts well-formed rows against
// error/short rows. The header must carry all catalog columns.
func Validate(ctx util.LogContext, path string) (good int, bad int, err error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, util.MissingInput("Catalog does not exist: " + path)
		}
		return 0, 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, 0, util.LogSimpleErr(ctx, "Failed to read catalog "+path, err)
	}
	if len(rows) == 0 {
		return 0, 0, util.InvalidArgument("Catalog is empty: " + path)
	}

	columns, err := newColumnMap(Columns, rows[0])
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows[1:] {
		if len(row) != len(Columns) {
			bad++
			continue
		}
		values := columns.valueMap(row)
		if values["Raster"] == "" {
			bad++
			continue
		}
		good++
	}
	return good, bad, nil
}
