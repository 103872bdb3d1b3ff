// Package export writes a week grid in one of several output formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

var (
	ErrNoSchedule    = errors.New("no schedule to export")
	ErrUnknownFormat = errors.New("unknown export format")
)

type Converter interface {
	Write(w io.Writer, g *weekgrid.Grid) error
	// ContentType is the MIME type of the written output.
	ContentType() string
}

var converters = map[string]func() Converter{
	"json":  func() Converter { return JSONConverter{} },
	"pjson": func() Converter { return JSONConverter{Pretty: true} },
	"yaml":  func() Converter { return YAMLConverter{} },
	"xlsx":  func() Converter { return XLSXConverter{} },
	"text":  func() Converter { return TextConverter{} },
}

// New returns the converter registered under name.
func New(name string) (Converter, error) {
	mk, ok := converters[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, name, Formats())
	}
	return mk(), nil
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(converters))
	for k := range converters {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
