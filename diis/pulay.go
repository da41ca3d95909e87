// pulay.go --  This file is part of goSCF project.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coefficients solves Pulay's constrained least-squares system over the
// recorded residuals and returns one extrapolation weight per stored pair.
// The weights sum to one; they may be negative. A single-pair history
// short-circuits to [1] without a solve. An empty history returns
// ErrEmptyHistory; a singular or ill-conditioned system returns an error
// wrapping ErrSingularExtrapolation.
func Coefficients(h *History) ([]float64, error) {
	n := h.Len()
	if n == 0 {
		return nil, ErrEmptyHistory
	}
	if n == 1 {
		return []float64{1}, nil
	}

	bmat := bordered(h)
	rhs := mat.NewVecDense(n+1, nil)
	rhs.SetVec(n, -1)

	var lu mat.LU
	lu.Factorize(bmat)
	var ctilde mat.VecDense
	if err := lu.SolveVecTo(&ctilde, false, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularExtrapolation, err)
	}

	// Last entry is the Lagrange multiplier, dropped.
	coefs := make([]float64, n)
	for i := range coefs {
		coefs[i] = ctilde.AtVec(i)
	}
	return coefs, nil
}

// bordered assembles the (n+1)x(n+1) Pulay matrix: B[i][j] = <r_i, r_j>
// (Frobenius inner product), bordered by a -1 row and column with a zero
// corner to enforce the sum-to-one constraint.
func bordered(h *History) *mat.Dense {
	n := h.Len()
	b := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		b.Set(i, n, -1)
		b.Set(n, i, -1)
	}
	prod := mat.NewDense(h.rows, h.cols, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			prod.MulElem(h.residuals[i], h.residuals[j])
			v := mat.Sum(prod)
			b.Set(i, j, v)
			b.Set(j, i, v)
		}
	}
	return b
}
