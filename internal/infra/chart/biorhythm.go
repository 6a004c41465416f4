package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
)

// Default canvas size of a rendered chart.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var axisColors = map[biorhythm.Axis]color.RGBA{
	biorhythm.AxisPhysical:     {R: 220, G: 50, B: 47, A: 255},
	biorhythm.AxisEmotional:    {R: 38, G: 139, B: 210, A: 255},
	biorhythm.AxisIntellectual: {R: 133, G: 153, B: 0, A: 255},
}

// RenderBiorhythm writes a PNG line chart of the three cycles in r.
func RenderBiorhythm(w io.Writer, r biorhythm.RangeReading) error {
	if len(r.Dates) == 0 {
		return errors.New("chart: range has no days")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Biorhythm for %s (%s to %s)", r.BirthDate, r.Start, r.End)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Value"
	p.X.Tick.Marker = plot.TimeTicks{Format: "01-02"}
	p.Y.Min = -1.1
	p.Y.Max = 1.1
	p.Add(plotter.NewGrid())

	series := map[biorhythm.Axis][]float64{
		biorhythm.AxisPhysical:     r.Physical,
		biorhythm.AxisEmotional:    r.Emotional,
		biorhythm.AxisIntellectual: r.Intellectual,
	}
	for _, c := range biorhythm.Cycles {
		pts := make(plotter.XYs, len(r.Dates))
		for i, d := range r.Dates {
			pts[i].X = float64(d.Time().Unix())
			pts[i].Y = series[c.Axis][i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart: %s line: %w", c.Axis, err)
		}
		line.Color = axisColors[c.Axis]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s (%dd)", c.Axis, c.Period), line)
	}

	if !r.Today.IsZero() {
		x := float64(r.Today.Time().Unix())
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: -1.1}, {X: x, Y: 1.1}})
		if err != nil {
			return fmt.Errorf("chart: today marker: %w", err)
		}
		marker.Color = color.RGBA{A: 120}
		marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(marker)
	}

	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("chart: encode: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
