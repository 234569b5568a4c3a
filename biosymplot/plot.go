//Package biosymplot produces simple plots from a molecular system for quick
//inspection. It is purely additive: nothing in the core depends on it.
package biosymplot

import (
	"image/color"

	biosym "github.com/rmera/biosym"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ChargeHistogram plots the distribution of partial charges of every atom in
// sys and saves it as a PNG file with the given name.
func ChargeHistogram(sys *biosym.System, filename string) error {
	if sys == nil || sys.NAtoms() == 0 {
		return biosym.CErrorf("ChargeHistogram: nil or empty system")
	}
	vals := make(plotter.Values, 0, sys.NAtoms())
	for _, mol := range sys.Mols {
		for _, at := range mol.Atoms {
			vals = append(vals, at.Charge)
		}
	}
	p := plot.New()
	p.Title.Text = "Partial charges"
	p.X.Label.Text = "charge (e)"
	p.Y.Label.Text = "atoms"
	h, err := plotter.NewHist(vals, 16)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 255, A: 255}
	p.Add(h)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
