// Package feederrors contains the errors returned when a GTFS static table cannot be used.
package feederrors

import (
	"fmt"

	"github.com/jamespfennell/trainstops/constants"
)

type StaticError interface {
	File() constants.StaticFile
	Error() string
}

// FileNotFoundError is returned when a table cannot be opened.
type FileNotFoundError struct {
	FileName constants.StaticFile
	Path     string
	Err      error
}

func (e FileNotFoundError) File() constants.StaticFile {
	return e.FileName
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("unable to open %s at %s: %s", e.FileName, e.Path, e.Err)
}

func (e FileNotFoundError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a table lacks a column the pipeline reads.
//
// Row is zero when the header itself is missing the columns.
type MissingFieldError struct {
	FileName constants.StaticFile
	Row      int
	Keys     []string
}

func (e MissingFieldError) File() constants.StaticFile {
	return e.FileName
}

func (e MissingFieldError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s is missing required columns %s", e.FileName, e.Keys)
	}
	return fmt.Sprintf("row %d of %s is missing fields %s", e.Row, e.FileName, e.Keys)
}

// KeyNotFoundError is returned when a stop on a selected route has no entry in the stops table.
type KeyNotFoundError struct {
	FileName constants.StaticFile
	RouteID  string
	Key      string
}

func (e KeyNotFoundError) File() constants.StaticFile {
	return e.FileName
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("stop %q on route %s has no entry in %s", e.Key, e.RouteID, e.FileName)
}
