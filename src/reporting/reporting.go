/*
	the reporting package renders a density plot of a windowing operator's
	emitted values against their order of emission, so a user can eyeball
	how the emitted hash values of a minimiser/syncmer run are spread.
*/
package reporting

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Emission is one value produced by a windowing operator, tagged with
// its 0-based position in the emission order.
type Emission struct {
	Position int
	Value    uint64
}

// DensityReport accumulates emissions from a single operator run and
// renders them to a PNG plot.
type DensityReport struct {
	Label     string
	OutDir    string
	emissions []Emission
	nextIndex int
}

// NewDensityReport builds a report labelled name, whose plot is written
// under outDir.
func NewDensityReport(name, outDir string) *DensityReport {
	return &DensityReport{Label: name, OutDir: outDir}
}

// Add records the next emitted value.
func (d *DensityReport) Add(value uint64) {
	d.emissions = append(d.emissions, Emission{Position: d.nextIndex, Value: value})
	d.nextIndex++
}

// Count returns the number of emissions recorded so far.
func (d *DensityReport) Count() int {
	return len(d.emissions)
}

// Save renders the density plot as a PNG under OutDir, named after
// Label, and returns the file path written.
func (d *DensityReport) Save() (string, error) {
	points := make(plotter.XYs, len(d.emissions))
	for i, e := range d.emissions {
		points[i].X = float64(e.Position)
		points[i].Y = float64(e.Value)
	}

	densityPlot, err := plot.New()
	if err != nil {
		return "", err
	}
	densityPlot.Title.Text = fmt.Sprintf("%v emission density", d.Label)
	densityPlot.X.Label.Text = "emission order"
	densityPlot.Y.Label.Text = "emitted hash value"
	if err := plotutil.AddLinePoints(densityPlot, d.Label, points); err != nil {
		return "", err
	}

	replacer := strings.NewReplacer("/", "__", " ", "_")
	fileName := fmt.Sprintf("%s/density-for-%s.png", d.OutDir, replacer.Replace(d.Label))
	if err := densityPlot.Save(8*vg.Inch, 8*vg.Inch, fileName); err != nil {
		return "", err
	}
	return fileName, nil
}
