// Package restmap draws linear restriction maps of annotated
// sequences.
package restmap

import (
	"fmt"
	"io"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/plasmid/bio"
	"bitbucket.org/Davydov/plasmid/enzyme"
	"bitbucket.org/Davydov/plasmid/seq"
)

// log is the global logging variable.
var log = logging.MustGetLogger("restmap")

// Config stores the drawing settings.
type Config struct {
	// Title is printed above the map.
	Title string
	// Width and Height are the image dimensions.
	Width, Height vg.Length
	// Format is one of svg, png, pdf, eps, jpg or tiff.
	Format string
	// Rows is the number of label rows used to keep the names of
	// neighbouring sites apart.
	Rows int
}

// DefaultConfig returns an 8x3 inch SVG configuration.
func DefaultConfig() Config {
	return Config{
		Width:  8 * vg.Inch,
		Height: 3 * vg.Inch,
		Format: "svg",
		Rows:   4,
	}
}

// cutX returns the x coordinate of an annotation: its cut if it has
// one, the start of the site otherwise. Base i spans [i, i+1).
func cutX(a enzyme.Annotation) float64 {
	if cut, ok := a.Cut(); ok {
		return float64(cut + 1)
	}
	first, _ := a.Bases()
	return float64(first)
}

// Plot creates the map of a sequence of n bases.
func Plot(n int, anns []enzyme.Annotation, cfg Config) (*plot.Plot, error) {
	rows := cfg.Rows
	if rows < 1 {
		rows = 1
	}
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "position (bp)"
	p.X.Min = 0
	p.X.Max = float64(n)
	p.Y.Min = -0.5
	p.Y.Max = float64(rows) + 0.5
	p.HideY()

	backbone, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: float64(n), Y: 0}})
	if err != nil {
		return nil, err
	}
	backbone.LineStyle.Width = vg.Points(2)
	p.Add(backbone)

	if len(anns) == 0 {
		return p, nil
	}

	sites := make(plotter.XYs, len(anns))
	labels := make([]string, len(anns))
	for i, a := range anns {
		sites[i] = plotter.XY{X: cutX(a), Y: float64(i%rows + 1)}
		labels[i] = a.Name
		tick, err := plotter.NewLine(plotter.XYs{{X: sites[i].X, Y: 0}, sites[i]})
		if err != nil {
			return nil, err
		}
		p.Add(tick)
	}
	sc, err := plotter.NewScatter(sites)
	if err != nil {
		return nil, err
	}
	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: sites, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(sc, lb)
	return p, nil
}

// Write encodes a plot in the configured format.
func Write(w io.Writer, p *plot.Plot, cfg Config) error {
	wt, err := p.WriterTo(cfg.Width, cfg.Height, cfg.Format)
	if err != nil {
		return fmt.Errorf("restriction map: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Render draws a sequence with its annotations. The sequence is not
// annotated here, call AnnotateRestrictionEnzymes first.
func Render[B bio.Base[B]](w io.Writer, s *seq.Sequence[B], cfg Config) error {
	anns := s.Annotations()
	log.Debugf("Drawing %d bases, %d sites", s.Len(), len(anns))
	p, err := Plot(s.Len(), anns, cfg)
	if err != nil {
		return err
	}
	return Write(w, p, cfg)
}
