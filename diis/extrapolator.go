// extrapolator.go --  This file is part of goSCF project.
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
package diis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Options configures an Extrapolator.
type Options struct {
	// MaxHistory caps the number of stored trial/residual pairs; once
	// full the oldest pair is evicted each step. Zero or negative keeps
	// the whole history.
	MaxHistory int
}

// Extrapolator accelerates a fixed-point iteration by DIIS. One instance
// serves one run; it owns its history exclusively and is not safe for
// concurrent use.
type Extrapolator struct {
	hist      *History
	rms       float64
	fallbacks int
}

// New returns an Extrapolator with an empty history. opts may be nil.
func New(opts *Options) *Extrapolator {
	max := 0
	if opts != nil {
		max = opts.MaxHistory
	}
	return &Extrapolator{hist: NewHistory(max)}
}

// Step records the pair and returns the extrapolated trial vector,
// Sum_i c_i * trial_i over the stored history. With fewer than two stored
// pairs the trial is returned as-is. A singular Pulay system is recovered
// locally: the latest trial is returned unchanged and the fallback counter
// is incremented. The only error Step surfaces is ErrDimensionMismatch.
func (e *Extrapolator) Step(trial, residual mat.Matrix) (mat.Matrix, error) {
	if err := e.hist.Append(trial, residual); err != nil {
		return nil, err
	}
	e.rms = rms(residual)
	if e.hist.Len() < 2 {
		return trial, nil
	}

	coefs, err := Coefficients(e.hist)
	if err != nil {
		if errors.Is(err, ErrSingularExtrapolation) {
			e.fallbacks++
			return trial, nil
		}
		return nil, err
	}

	result := mat.NewDense(e.hist.rows, e.hist.cols, nil)
	part := mat.NewDense(e.hist.rows, e.hist.cols, nil)
	for i, c := range coefs {
		part.Scale(c, e.hist.Trial(i))
		result.Add(result, part)
	}
	return result, nil
}

// RMS reports sqrt(mean(r^2)) of the residual passed to the latest Step.
// The driver tests it against its own convergence tolerance; the
// extrapolator never decides convergence itself.
func (e *Extrapolator) RMS() float64 {
	return e.rms
}

// Fallbacks counts the steps where a singular Pulay system forced the
// unextrapolated trial to be used.
func (e *Extrapolator) Fallbacks() int {
	return e.fallbacks
}

// Len reports the current history size.
func (e *Extrapolator) Len() int {
	return e.hist.Len()
}

func rms(r mat.Matrix) float64 {
	rows, cols := r.Dims()
	sq := mat.NewDense(rows, cols, nil)
	sq.MulElem(r, r)
	return math.Sqrt(stat.Mean(sq.RawMatrix().Data, nil))
}
