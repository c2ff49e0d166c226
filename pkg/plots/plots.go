package plots

import (
	"fmt"
	"image/color"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	histFill = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	kdeLine  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	palette  = []color.RGBA{
		{R: 102, G: 194, B: 165, A: 255},
		{R: 252, G: 141, B: 98, A: 255},
		{R: 141, G: 160, B: 203, A: 255},
		{R: 231, G: 138, B: 195, A: 255},
		{R: 166, G: 216, B: 84, A: 255},
	}
)

// PriceHistogram renders a unit-area histogram of prices with a kernel
// density overlay.
func PriceHistogram(prices []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Distribution of Airbnb Prices"
	p.X.Label.Text = "Price (USD)"
	p.Y.Label.Text = "Density"

	h, err := plotter.NewHist(plotter.Values(prices), 50)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.Normalize(1)
	h.FillColor = histFill
	p.Add(h)

	xs := make([]float64, len(prices))
	copy(xs, prices)
	s := mstats.Sample{Xs: xs}
	s.Sort()
	kde := &mstats.KDE{Sample: s}
	lo, hi := s.Bounds()
	const steps = 200
	pts := make(plotter.XYs, steps)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/float64(steps-1)
		pts[i] = plotter.XY{X: x, Y: kde.PDF(x)}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("density line: %w", err)
	}
	l.Color = kdeLine
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// PriceBoxplot renders one box per neighbourhood group. prices[i] holds
// the price series for groups[i].
func PriceBoxplot(groups []string, prices [][]float64, path string) error {
	p := plot.New()
	p.Title.Text = "Price Distribution by Neighbourhood Group"
	p.X.Label.Text = "Neighbourhood Group"
	p.Y.Label.Text = "Price (USD)"

	w := vg.Points(40)
	for i, series := range prices {
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(series))
		if err != nil {
			return fmt.Errorf("boxplot %s: %w", groups[i], err)
		}
		b.FillColor = palette[i%len(palette)]
		p.Add(b)
	}
	p.NominalX(groups...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// AvgPriceBars renders mean price per neighbourhood group with one bar
// series per room type. means is indexed [roomType][group].
func AvgPriceBars(groups, roomTypes []string, means [][]float64, path string) error {
	p := plot.New()
	p.Title.Text = "Average Price by Neighbourhood Group and Room Type"
	p.X.Label.Text = "Neighbourhood Group"
	p.Y.Label.Text = "Average Price (USD)"

	w := vg.Points(16)
	offset := -w * vg.Length(len(roomTypes)-1) / 2
	for j, rt := range roomTypes {
		bars, err := plotter.NewBarChart(plotter.Values(means[j]), w)
		if err != nil {
			return fmt.Errorf("bars %s: %w", rt, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = palette[j%len(palette)]
		bars.Offset = offset + w*vg.Length(j)
		p.Add(bars)
		p.Legend.Add(rt, bars)
	}
	p.Legend.Top = true
	p.NominalX(groups...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
