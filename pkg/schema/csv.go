package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVFileNames maps each level to the file name of its definition table.
var CSVFileNames = map[Level]string{
	LevelRoot:    "metadata_def_root_level.csv",
	LevelCML:     "metadata_def_cml_level.csv",
	LevelChannel: "metadata_def_channel_level.csv",
}

// csvColumns are the required table columns after the leading name column.
var csvColumns = []string{"Units", "Type", "Mandatory", "Description"}

// ParseDefinitionsCSV parses one definition table. The first column holds
// the attribute name; the remaining columns are located by header name.
func ParseDefinitionsCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty definition table", ErrSchemaConfiguration)
		}
		return nil, fmt.Errorf("%w: reading header: %v", ErrSchemaConfiguration, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			continue
		}
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w: definition table has no %q column", ErrSchemaConfiguration, col)
		}
	}

	field := func(row []string, col string) string {
		i := index[strings.ToLower(col)]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaConfiguration, err)
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		records = append(records, Record{
			Name:        row[0],
			Units:       field(row, "Units"),
			Type:        field(row, "Type"),
			Mandatory:   field(row, "Mandatory"),
			Description: field(row, "Description"),
		})
	}
	return records, nil
}

// LoadDefinitionsCSVDir loads the three definition tables named in
// CSVFileNames from dir.
func LoadDefinitionsCSVDir(dir string) (Definitions, error) {
	defs := Definitions{Levels: make(map[Level][]Record, len(CSVFileNames))}

	for _, level := range Levels() {
		path := filepath.Join(dir, CSVFileNames[level])
		f, err := os.Open(path)
		if err != nil {
			return Definitions{}, fmt.Errorf("%w: level %q: %w", ErrSchemaConfiguration, level, err)
		}
		records, err := ParseDefinitionsCSV(f)
		f.Close()
		if err != nil {
			return Definitions{}, fmt.Errorf("%s: %w", path, err)
		}
		defs.Levels[level] = records
	}
	return defs, nil
}
