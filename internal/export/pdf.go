package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/FutonFrame/internal/model"
)

// layerColor is the stroke color of a profile layer.
type layerColor struct {
	R, G, B int
}

var layerColors = map[string]layerColor{
	LayerBeam:    {R: 121, G: 85, B: 72},  // brown
	LayerSupport: {R: 33, G: 150, B: 243}, // blue
	LayerBack:    {R: 76, G: 175, B: 80},  // green
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 5.5
	profileH     = 80.0
)

// WritePDF renders a worksheet with the side profile, the design constants,
// every measurement and the cut list.
func WritePDF(w io.Writer, d model.Design, m model.Measurements) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Futon frame worksheet", false)

	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Futon Frame Worksheet", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight, pageWidth-marginRight, marginTop+headerHeight)

	y := marginTop + headerHeight + 4
	drawProfile(pdf, sideProfile(d, m), y, profileH)
	y += profileH + 6

	y = drawTable(pdf, "Measurements", []float64{110, 70}, []string{"Quantity", "Value"}, measurementRows(m), y)
	y += 4

	colW := []float64{35, 25, 25, 15, 80}
	drawTable(pdf, "Cut List", colW, []string{"Member", "Length", "Thickness", "Qty", "Note"}, cutListRows(model.CutList(d, m)), y)

	// Design constants on their own page so the first page stays readable
	pdf.AddPage()
	drawTable(pdf, "Design Constants", []float64{110, 70}, []string{"Constant", "Value"}, designRows(d), marginTop)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by FutonFrame - inches, degrees, lbf, psi", "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

// drawProfile scales the side profile to fit a band of the page.
func drawProfile(pdf *fpdf.Fpdf, segs []segment, top, height float64) {
	min, max := bounds(segs)
	drawWidth := pageWidth - marginLeft - marginRight

	scale := math.Min(drawWidth/(max.X-min.X), height/(max.Y-min.Y))
	canvasW := (max.X - min.X) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2

	// Page Y grows downward, profile Y grows upward.
	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-min.X)*scale, top + height - (y-min.Y)*scale
	}

	// Floor
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	fx1, fy := toPage(min.X, 0)
	fx2, _ := toPage(max.X, 0)
	pdf.Line(fx1, fy, fx2, fy)

	pdf.SetLineWidth(0.6)
	for _, s := range segs {
		col := layerColors[s.layer]
		pdf.SetDrawColor(col.R, col.G, col.B)
		x1, y1 := toPage(s.x1, s.y1)
		x2, y2 := toPage(s.x2, s.y2)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDrawColor(0, 0, 0)
}

// drawTable draws a titled table with a shaded header and alternating rows.
// It returns the Y position below the table.
func drawTable(pdf *fpdf.Fpdf, title string, colWidths []float64, headers []string, rows [][]string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 8)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range row {
			align := "L"
			if j > 0 {
				align = "C"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}
	return y
}

func measurementRows(m model.Measurements) [][]string {
	var rows [][]string
	for _, v := range m.Quantities() {
		rows = append(rows, []string{v.Label, fmt.Sprintf(v.Verb, v.Value)})
	}
	return rows
}

func designRows(d model.Design) [][]string {
	var rows [][]string
	for _, v := range d.Values() {
		rows = append(rows, []string{v.Label, fmt.Sprintf(v.Verb, v.Value)})
	}
	return rows
}

func cutListRows(members []model.Member) [][]string {
	rows := make([][]string, len(members))
	for i, mem := range members {
		rows[i] = []string{
			mem.Name,
			fmt.Sprintf("%.4f in", mem.Length),
			fmt.Sprintf("%.3f in", mem.Thickness),
			fmt.Sprintf("%d", mem.Quantity),
			mem.Note,
		}
	}
	return rows
}
