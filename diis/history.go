// history.go --  This file is part of goSCF project.
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

import "gonum.org/v1/gonum/mat"

// History records trial/residual pairs in iteration order. The stored
// matrices are references owned by the caller; History never copies or
// mutates them. All pairs must share one shape, fixed by the first Append.
type History struct {
	trials     []mat.Matrix
	residuals  []mat.Matrix
	rows, cols int
	max        int
}

// NewHistory returns an empty history. A positive max caps the number of
// stored pairs: once full, every Append evicts the oldest pair, preserving
// the relative order of the survivors. max <= 0 keeps everything.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Append adds a pair at the end. It returns ErrDimensionMismatch when the
// residual shape differs from the trial shape, or when either differs from
// the shape of the pairs already stored.
func (h *History) Append(trial, residual mat.Matrix) error {
	tr, tc := trial.Dims()
	rr, rc := residual.Dims()
	if tr != rr || tc != rc {
		return ErrDimensionMismatch
	}
	if h.Len() > 0 && (tr != h.rows || tc != h.cols) {
		return ErrDimensionMismatch
	}
	h.rows, h.cols = tr, tc
	h.trials = append(h.trials, trial)
	h.residuals = append(h.residuals, residual)
	if h.max > 0 && len(h.trials) > h.max {
		h.trials = h.trials[1:]
		h.residuals = h.residuals[1:]
	}
	return nil
}

// Len reports the number of stored pairs.
func (h *History) Len() int {
	return len(h.trials)
}

// Trial returns the i-th stored trial vector, oldest first.
func (h *History) Trial(i int) mat.Matrix {
	return h.trials[i]
}

// Residual returns the i-th stored residual vector, oldest first.
func (h *History) Residual(i int) mat.Matrix {
	return h.residuals[i]
}
