// ortho_test.go --  This file is part of goSCF project.
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
package scf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"goscf/scf"
)

// TestSqrtInverse_Orthogonalizes: A S A must be the identity.
func TestSqrtInverse_Orthogonalizes(t *testing.T) {
	s := mat.NewDense(2, 2, []float64{1, 0.5, 0.5, 1})
	a, err := scf.SqrtInverse(s)
	require.NoError(t, err)

	var asa mat.Dense
	asa.Mul(a, s)
	asa.Mul(&asa, a)

	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.EqualApprox(eye, &asa, 1e-12), "A S A should be I, got\n%v", mat.Formatted(&asa))
}

// TestSqrtInverse_Symmetric: the orthogonalizer of a symmetric matrix is
// itself symmetric.
func TestSqrtInverse_Symmetric(t *testing.T) {
	s := mat.NewDense(3, 3, []float64{
		1, 0.3, 0.1,
		0.3, 1, 0.2,
		0.1, 0.2, 1,
	})
	a, err := scf.SqrtInverse(s)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a, a.T(), 1e-12))
}

// TestSqrtInverse_NotSquare.
func TestSqrtInverse_NotSquare(t *testing.T) {
	_, err := scf.SqrtInverse(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, scf.ErrDimensionMismatch)
}

// TestSqrtInverse_NotPositiveDefinite: eigenvalues of [[1,2],[2,1]] are
// 3 and -1.
func TestSqrtInverse_NotPositiveDefinite(t *testing.T) {
	s := mat.NewDense(2, 2, []float64{1, 2, 2, 1})
	_, err := scf.SqrtInverse(s)
	assert.ErrorIs(t, err, scf.ErrOverlapNotPD)
}
