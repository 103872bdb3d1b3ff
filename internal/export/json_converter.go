package export

import (
	"encoding/json"
	"io"

	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(w io.Writer, g *weekgrid.Grid) error {
	if g == nil {
		return ErrNoSchedule
	}
	enc := json.NewEncoder(w)
	if j.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(g)
}

func (JSONConverter) ContentType() string {
	return "application/json"
}
