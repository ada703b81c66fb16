package export

import (
	"fmt"
	"io"

	"github.com/piwi3910/FutonFrame/internal/model"
	"github.com/yofu/dxf"
)

// WriteDXF writes the side profile as a DXF drawing in inches, one layer per
// member so each can be hidden or cut separately.
func WriteDXF(w io.Writer, d model.Design, m model.Measurements) error {
	drawing := dxf.NewDrawing()
	for _, layer := range []string{LayerBeam, LayerSupport, LayerBack} {
		if _, err := drawing.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layer, err)
		}
	}

	for _, s := range sideProfile(d, m) {
		if err := drawing.ChangeLayer(s.layer); err != nil {
			return fmt.Errorf("failed to select layer %s: %w", s.layer, err)
		}
		if _, err := drawing.Line(s.x1, s.y1, 0, s.x2, s.y2, 0); err != nil {
			return fmt.Errorf("failed to draw %s edge: %w", s.layer, err)
		}
	}

	if _, err := drawing.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}
