package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

type YAMLConverter struct{}

func (YAMLConverter) Write(w io.Writer, g *weekgrid.Grid) error {
	if g == nil {
		return ErrNoSchedule
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return err
	}
	return enc.Close()
}

func (YAMLConverter) ContentType() string {
	return "application/yaml"
}
