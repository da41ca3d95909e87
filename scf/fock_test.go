// fock_test.go --  This file is part of goSCF project.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestTwoElectron_ConstantERI: with every (ij|kl) = 1 the Coulomb and
// exchange sums collapse to G[i][j] = sum(D) for every entry.
func TestTwoElectron_ConstantERI(t *testing.T) {
	n := 2
	eri := NewERI(n)
	for idx := range eri.Data() {
		eri.Data()[idx] = 1
	}
	d := mat.NewDense(n, n, []float64{0.5, 0.25, 0.25, 0.5})

	g := twoElectron(d, eri)
	want := 1.5 // sum(D) * (2 - 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if got := g.At(i, j); !closeTo(got, want) {
				t.Errorf("G[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

// TestTwoElectron_SingleIntegral: only (00|00) = u is set, so the only
// surviving term is G[0][0] = D[0][0] * (2u - u).
func TestTwoElectron_SingleIntegral(t *testing.T) {
	eri := NewERI(2)
	const u = 0.625
	eri.Set(0, 0, 0, 0, u)
	d := mat.NewDense(2, 2, []float64{0.8, 0.1, 0.1, 0.2})

	g := twoElectron(d, eri)
	if got := g.At(0, 0); !closeTo(got, 0.8*u) {
		t.Errorf("G[0][0] = %v, want %v", got, 0.8*u)
	}
	for _, ij := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		if got := g.At(ij[0], ij[1]); got != 0 {
			t.Errorf("G[%d][%d] = %v, want 0", ij[0], ij[1], got)
		}
	}
}

// TestTwoElectron_ZeroERI.
func TestTwoElectron_ZeroERI(t *testing.T) {
	d := mat.NewDense(3, 3, nil)
	d.Set(0, 0, 1)
	g := twoElectron(d, NewERI(3))
	if s := mat.Sum(g); s != 0 {
		t.Errorf("sum(G) = %v over a zero ERI tensor", s)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-13
}
