package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mghazyfawazh/outlines/internal/render"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

const scheduleSheet = "Schedule"

// XLSXConverter writes the grid to a single-sheet workbook: a header row
// with the weekday labels, then one spreadsheet row per grid line.
type XLSXConverter struct{}

func (XLSXConverter) Write(w io.Writer, g *weekgrid.Grid) error {
	f, err := Workbook(g)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func (XLSXConverter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Workbook builds the schedule workbook for g.
func Workbook(g *weekgrid.Grid) (*excelize.File, error) {
	if g == nil {
		return nil, ErrNoSchedule
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	blockStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{render.SFURed}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	plainStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	for col, label := range g.Columns() {
		name, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(scheduleSheet, name, label)
		f.SetCellStyle(scheduleSheet, name, name, headerStyle)
	}

	// every column is styled down to the tallest cell, blank weekdays included
	depth := g.Depth()
	for col, d := range weekgrid.Days {
		c := g.Cell(d)
		for i := 0; i < depth; i++ {
			name, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			style := plainStyle
			if c != nil && i < len(c.Lines) {
				if c.Lines[i] != "" {
					f.SetCellValue(scheduleSheet, name, c.Lines[i])
				}
				if i >= c.BlockStart() {
					style = blockStyle
				}
			}
			f.SetCellStyle(scheduleSheet, name, name, style)
		}
	}

	for col := 1; col <= len(weekgrid.Days); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(scheduleSheet, colName, colName, 18)
	}
	return f, nil
}
