package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plyColor shades a ply by its angle: 0° plies blue, 90° plies red
func plyColor(angle float64) color.Color {
	switch fill(angle) {
	case "═":
		return color.RGBA{R: 100, G: 149, B: 237, A: 200}
	case "┃":
		return color.RGBA{R: 205, G: 92, B: 92, A: 200}
	case "╱":
		return color.RGBA{R: 60, G: 179, B: 113, A: 200}
	default:
		return color.RGBA{R: 218, G: 165, B: 32, A: 200}
	}
}

// ExportStackDiagram exports the laminate cross-section to an image file
func ExportStackDiagram(data StackData, filename string) error {
	if len(data.Plies) == 0 {
		return fmt.Errorf("stack diagram: no plies to draw")
	}

	p := plot.New()
	p.Title.Text = "Laminate Stack"
	if data.Name != "" {
		p.Title.Text += ": " + data.Name
	}
	p.X.Label.Text = "Width"
	p.Y.Label.Text = "z"

	width := data.Thickness()
	for i, ply := range data.Plies {
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: ply.Bottom},
			{X: width, Y: ply.Bottom},
			{X: width, Y: ply.Top},
			{X: 0, Y: ply.Top},
		})
		if err != nil {
			return err
		}
		band.Color = plyColor(ply.Angle)
		band.LineStyle.Color = color.Black
		band.LineStyle.Width = vg.Points(0.5)
		p.Add(band)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: width * 1.05, Y: (ply.Bottom + ply.Top) / 2}},
			Labels: []string{fmt.Sprintf("%d: %.0f°", i+1, ply.Angle)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Reference surface
	ref, err := plotter.NewLine(plotter.XYs{
		{X: -0.1 * width, Y: 0},
		{X: 1.1 * width, Y: 0},
	})
	if err != nil {
		return err
	}
	ref.LineStyle.Width = vg.Points(1.5)
	ref.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ref)
	p.Legend.Add("reference surface", ref)

	p.X.Max = 1.4 * width

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportSweep exports a stiffness term against the ply angle
func ExportSweep(data SweepData, filename string) error {
	if len(data.Values) == 0 || len(data.Angles) != len(data.Values) {
		return fmt.Errorf("sweep diagram: got %d angles for %d values", len(data.Angles), len(data.Values))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs Ply Angle", data.Term)
	if data.Material != "" {
		p.Title.Text += " (" + data.Material + ")"
	}
	p.X.Label.Text = "Angle (°)"
	p.Y.Label.Text = data.Term
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(data.Values))
	for i := range data.Values {
		pts[i] = plotter.XY{X: data.Angles[i], Y: data.Values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot, creating the directory if needed. Files without a
// png, svg or pdf extension are saved as png.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
