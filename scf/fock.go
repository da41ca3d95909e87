// fock.go --  This file is part of goSCF project.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// twoElectron builds the two-electron part of the Fock matrix,
//
//	G[i][j] = Sum_kl D[k][l] * (2(ij|kl) - (ik|jl)),
//
// with the occupation-1 density convention. Rows of i are striped across
// GOMAXPROCS goroutines; each goroutine writes a disjoint set of rows.
func twoElectron(d *mat.Dense, eri *ERI) *mat.Dense {
	n := eri.N()
	g := mat.NewDense(n, n, nil)

	workers := runtime.GOMAXPROCS(-1)
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				for j := 0; j < n; j++ {
					var sum float64
					for k := 0; k < n; k++ {
						for l := 0; l < n; l++ {
							sum += d.At(k, l) * (2*eri.At(i, j, k, l) - eri.At(i, k, j, l))
						}
					}
					g.Set(i, j, sum)
				}
			}
		}(w)
	}
	wg.Wait()
	return g
}
