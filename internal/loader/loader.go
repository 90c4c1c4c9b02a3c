// Package loader locates the developments CSV and parses it into address records.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"address-copier/internal/models"

	"github.com/rotisserie/eris"
)

const (
	// DefaultFileName is the sheet shipped next to the executable
	DefaultFileName = "Housing_Hope_Developments.csv"
	// DefaultMissingValue stands in for absent or empty cells
	DefaultMissingValue = "nan"
)

var (
	ErrSourceNotFound = eris.New("source not found")
	ErrMissingColumn  = eris.New("missing expected column")
)

// Options configures parsing.
type Options struct {
	MissingValue string
}

// DefaultOptions renders absent cells as "nan".
func DefaultOptions() Options {
	return Options{MissingValue: DefaultMissingValue}
}

// CandidateDirs returns the program's own directory followed by the current
// working directory. Directories that cannot be determined are skipped.
func CandidateDirs() []string {
	dirs := make([]string, 0, 2)

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	return dirs
}

// Resolve returns the first dir/name that exists as a regular file.
// An absolute name is checked as is.
func Resolve(name string, dirs ...string) (string, error) {
	var attempted []string

	if filepath.IsAbs(name) {
		attempted = append(attempted, name)
	} else {
		for _, dir := range dirs {
			attempted = append(attempted, filepath.Join(dir, name))
		}
	}

	for _, path := range attempted {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", eris.Wrapf(ErrSourceNotFound, "%s not found (tried %s)",
		filepath.Base(name), strings.Join(attempted, ", "))
}

// Load opens path and parses it.
func Load(path string, opts Options) ([]models.AddressRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrSourceNotFound, "open %s", path)
		}
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	records, err := Parse(f, opts)
	if err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}
	return records, nil
}

// Parse reads a header row followed by data rows. Columns are looked up by
// header name; a missing required column fails the whole parse.
func Parse(r io.Reader, opts Options) ([]models.AddressRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.Wrap(ErrMissingColumn, "csv: empty file, no header row")
	}
	if err != nil {
		return nil, eris.Wrap(err, "csv: read header")
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.AddressRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}

		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) || row[i] == "" {
				return opts.MissingValue
			}
			return row[i]
		}

		records = append(records, models.AddressRecord{
			PropertyName: cell(models.ColumnPropertyName),
			AddressLine:  cell(models.ColumnAddressLine),
			City:         cell(models.ColumnCity),
			Zip:          cell(models.ColumnZip),
		})
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	required := []string{
		models.ColumnPropertyName,
		models.ColumnAddressLine,
		models.ColumnCity,
		models.ColumnZip,
	}

	idx := make(map[string]int, len(required))
	for _, col := range required {
		i, ok := positions[col]
		if !ok {
			return nil, eris.Wrapf(ErrMissingColumn, "column %q", col)
		}
		idx[col] = i
	}
	return idx, nil
}
