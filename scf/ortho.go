// ortho.go --  This file is part of goSCF project.
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
package scf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SqrtInverse returns the symmetric orthogonalizer S^{-1/2} = V L^{-1/2} V^T
// of a positive-definite matrix. A non-positive eigenvalue means the basis
// is linearly dependent and yields ErrOverlapNotPD.
func SqrtInverse(s *mat.Dense) (*mat.Dense, error) {
	n, c := s.Dims()
	if n != c {
		return nil, ErrDimensionMismatch
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = s.At(i, j)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	invSqrt := make([]float64, n)
	for i, v := range vals {
		if v <= 0 {
			return nil, ErrOverlapNotPD
		}
		invSqrt[i] = 1 / math.Sqrt(v)
	}

	var ev mat.Dense
	eig.VectorsTo(&ev)
	var tmp, a mat.Dense
	tmp.Mul(&ev, mat.NewDiagDense(n, invSqrt))
	a.Mul(&tmp, ev.T())
	return &a, nil
}
