// convplot.go --  This file is part of goSCF project.
//
//	goSCF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package convplot renders SCF iteration records as PNG plots.
package convplot

import (
	"errors"

	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"goscf/scf"
)

// ErrNoData indicates an empty iteration record.
var ErrNoData = errors.New("convplot: no iterations to plot")

// Convergence writes the total energy per SCF iteration to fname as a PNG.
func Convergence(iters []scf.Iteration, fname string) error {
	if len(iters) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = "SCF convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "total energy / a.u."
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(iters))
	for i, it := range iters {
		pts[i].X = float64(it.Step)
		pts[i].Y = it.Energy
	}
	if err := plotutil.AddLinePoints(p, "E total", pts); err != nil {
		return err
	}
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fname)
}

// ResidualNorm writes the DIIS residual RMS per SCF iteration to fname as
// a PNG.
func ResidualNorm(iters []scf.Iteration, fname string) error {
	if len(iters) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = "DIIS residual"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "dRMS"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(iters))
	drms := make([]float64, len(iters))
	for i, it := range iters {
		pts[i].X = float64(it.Step)
		pts[i].Y = it.DRMS
		drms[i] = it.DRMS
	}
	p.Y.Min = 0
	if max := slices.Max(drms); max > 0 {
		p.Y.Max = max * 1.05
	} else {
		p.Y.Max = 1
	}
	if err := plotutil.AddLinePoints(p, "dRMS", pts); err != nil {
		return err
	}
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fname)
}
