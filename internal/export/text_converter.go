package export

import (
	"io"

	"github.com/mghazyfawazh/outlines/internal/render"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

// TextConverter draws the grid as a terminal table.
type TextConverter struct {
	NoColor bool
}

func (t TextConverter) Write(w io.Writer, g *weekgrid.Grid) error {
	if g == nil {
		return ErrNoSchedule
	}
	return render.GridText(w, g, t.NoColor)
}

func (TextConverter) ContentType() string {
	return "text/plain; charset=utf-8"
}
