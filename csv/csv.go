// Package csv is a wrapper around the stdlib csv library that provides a nice API for reading GTFS static tables.
//
// Because, of course, everything can be solved with another layer of indirection.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jamespfennell/trainstops/constants"
	"github.com/jamespfennell/trainstops/feederrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type File struct {
	name                   constants.StaticFile
	csvReader              *csv.Reader
	headerMap              map[string]int
	headerContent          []string
	rowNumber              int
	missingRequiredColumns []string
	currentRow             []string
	missingKeys            []string
	ioErr                  error
	closer                 func() error
}

// Open opens the table with the given name in dir.
func Open(dir string, name constants.StaticFile) (*File, error) {
	path := filepath.Join(dir, string(name))
	f, err := os.Open(path)
	if err != nil {
		return nil, feederrors.FileNotFoundError{FileName: name, Path: path, Err: err}
	}
	return New(name, f)
}

func New(name constants.StaticFile, reader io.ReadCloser) (*File, error) {
	csvReader := BOMAwareCSVReader(reader)
	// Short rows are reported as missing fields rather than as a parse error.
	csvReader.FieldsPerRecord = -1
	firstRow, err := csvReader.Read()
	if err == io.EOF {
		reader.Close()
		return nil, fmt.Errorf("%s contains no rows", name)
	} else if err != nil {
		reader.Close()
		return nil, fmt.Errorf("failed to read the header of %s: %w", name, err)
	}
	// The header record is kept, so rows after it may reuse the backing array.
	csvReader.ReuseRecord = true
	m := map[string]int{}
	for i, colHeader := range firstRow {
		m[colHeader] = i
	}
	return &File{
		name:          name,
		headerMap:     m,
		headerContent: firstRow,
		csvReader:     csvReader,
		closer:        reader.Close,
	}, nil
}

func (f *File) Name() constants.StaticFile {
	return f.name
}

func (f *File) HeaderContent() []string {
	return f.headerContent
}

type RequiredColumn struct {
	i int
	s string
	f *File
}

func (f *File) RequiredColumn(s string) RequiredColumn {
	i, b := f.headerMap[s]
	if !b {
		f.missingRequiredColumns = append(f.missingRequiredColumns, s)
		i = -1
	}
	return RequiredColumn{i, s, f}
}

// CheckRequiredColumns returns an error if any column requested through RequiredColumn is absent from the header.
func (f *File) CheckRequiredColumns() error {
	if len(f.missingRequiredColumns) == 0 {
		return nil
	}
	return feederrors.MissingFieldError{
		FileName: f.name,
		Keys:     f.missingRequiredColumns,
	}
}

// Read returns the value of the column in the current row.
//
// An empty cell is a valid value. Only a row too short to contain the column records the column as missing.
func (c RequiredColumn) Read() string {
	if c.i < 0 || c.i >= len(c.f.currentRow) {
		c.f.missingKeys = append(c.f.missingKeys, c.s)
		return ""
	}
	return c.f.currentRow[c.i]
}

func (f *File) NextRow() bool {
	cells, err := f.csvReader.Read()
	if err == io.EOF {
		f.currentRow = nil
		return false
	}
	if err != nil {
		f.currentRow = nil
		f.ioErr = fmt.Errorf("failed to read %s: %w", f.name, err)
		return false
	}
	f.rowNumber += 1
	f.currentRow = cells
	f.missingKeys = nil
	return true
}

// CheckRow returns an error if a column read from the current row was missing.
func (f *File) CheckRow() error {
	if len(f.missingKeys) == 0 {
		return nil
	}
	return feederrors.MissingFieldError{
		FileName: f.name,
		Row:      f.rowNumber,
		Keys:     f.missingKeys,
	}
}

// Close closes the underlying reader.
//
// If iteration stopped because of a read error, that error is returned.
func (f *File) Close() error {
	closeErr := f.closer()
	if f.ioErr != nil {
		return f.ioErr
	}
	return closeErr
}

// From: https://stackoverflow.com/a/76023436
//
// BOMAwareCSVReader will detect a UTF BOM (Byte Order Mark) at the
// start of the data and transform to UTF8 accordingly.
// If there is no BOM, it will read the data without any transformation.
func BOMAwareCSVReader(reader io.Reader) *csv.Reader {
	var transformer = unicode.BOMOverride(encoding.Nop.NewDecoder())
	return csv.NewReader(transform.NewReader(reader, transformer))
}
