// mp2.go --  This file is part of goSCF project.
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

// Package mp2 computes the closed-shell second-order Moller-Plesset
// correlation energy on top of a converged RHF reference, including the
// O(n^5) AO-to-MO transform of the two-electron integrals.
package mp2

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"goscf/scf"
)

// ErrNotConverged indicates an unconverged SCF reference; a perturbative
// correction on top of it would be meaningless.
var ErrNotConverged = errors.New("mp2: SCF reference is not converged")

// Transform carries the two-electron integrals from the AO basis to the MO
// basis, (pq|rs) = Sum C[mu][p] C[nu][q] C[la][r] C[si][s] (mu nu|la si),
// as four quarter transforms.
func Transform(eri *scf.ERI, c *mat.Dense) (*scf.ERI, error) {
	n := eri.N()
	if r, cc := c.Dims(); r != n || cc != n {
		return nil, scf.ErrDimensionMismatch
	}
	cur := eri
	for pass := 0; pass < 4; pass++ {
		cur = rotateContract(cur, c)
	}
	return cur, nil
}

// rotateContract contracts the leading index with C and cycles it to the
// trailing position: out[b][c][d][p] = Sum_a C[a][p] in[a][b][c][d].
// Four passes transform every index and restore the original order.
func rotateContract(in *scf.ERI, c *mat.Dense) *scf.ERI {
	n := in.N()
	out := scf.NewERI(n)
	for b := 0; b < n; b++ {
		for cc := 0; cc < n; cc++ {
			for d := 0; d < n; d++ {
				for p := 0; p < n; p++ {
					var sum float64
					for a := 0; a < n; a++ {
						sum += c.At(a, p) * in.At(a, b, cc, d)
					}
					out.Set(b, cc, d, p, sum)
				}
			}
		}
	}
	return out
}

// Energy is the closed-shell MP2 correlation energy,
//
//	E2 = Sum_ijab (ia|jb) * (2(ia|jb) - (ib|ja)) / (e_i + e_j - e_a - e_b),
//
// over doubly occupied i, j and virtual a, b. moERI must already be in the
// MO basis and eps ascending, matching scf.Result conventions.
func Energy(moERI *scf.ERI, eps []float64, nocc int) float64 {
	n := moERI.N()
	var e2 float64
	for i := 0; i < nocc; i++ {
		for j := 0; j < nocc; j++ {
			for a := nocc; a < n; a++ {
				for b := nocc; b < n; b++ {
					iajb := moERI.At(i, a, j, b)
					ibja := moERI.At(i, b, j, a)
					e2 += iajb * (2*iajb - ibja) / (eps[i] + eps[j] - eps[a] - eps[b])
				}
			}
		}
	}
	return e2
}

// Correction transforms the system's integrals with the converged MO
// coefficients and returns the MP2 correlation energy.
func Correction(sys *scf.System, res *scf.Result) (float64, error) {
	if !res.Converged {
		return 0, ErrNotConverged
	}
	mo, err := Transform(sys.ERI, res.C)
	if err != nil {
		return 0, err
	}
	return Energy(mo, res.Eps, sys.Nelec/2), nil
}
