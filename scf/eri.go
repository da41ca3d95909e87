// eri.go --  This file is part of goSCF project.
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

// ERI holds the two-electron repulsion integrals (ij|kl), chemist notation,
// over n basis functions as a dense flat array packed i*n^3 + j*n^2 + k*n + l.
type ERI struct {
	n    int
	data []float64
}

// NewERI returns a zero tensor over n basis functions.
func NewERI(n int) *ERI {
	return &ERI{n: n, data: make([]float64, n*n*n*n)}
}

// N reports the number of basis functions.
func (e *ERI) N() int {
	return e.n
}

func (e *ERI) index(i, j, k, l int) int {
	return ((i*e.n+j)*e.n+k)*e.n + l
}

// At returns (ij|kl).
func (e *ERI) At(i, j, k, l int) float64 {
	return e.data[e.index(i, j, k, l)]
}

// Set stores v at (ij|kl) only.
func (e *ERI) Set(i, j, k, l int, v float64) {
	e.data[e.index(i, j, k, l)] = v
}

// SetSym stores v at (ij|kl) and its seven permutation-symmetric images,
// the form integral dumps come in.
func (e *ERI) SetSym(i, j, k, l int, v float64) {
	e.Set(i, j, k, l, v)
	e.Set(j, i, k, l, v)
	e.Set(i, j, l, k, v)
	e.Set(j, i, l, k, v)
	e.Set(k, l, i, j, v)
	e.Set(l, k, i, j, v)
	e.Set(k, l, j, i, v)
	e.Set(l, k, j, i, v)
}

// Unpack splits a flat index back into (i, j, k, l).
func (e *ERI) Unpack(idx int) (i, j, k, l int) {
	n := e.n
	i = idx / (n * n * n)
	idx = idx % (n * n * n)
	j = idx / (n * n)
	idx = idx % (n * n)
	k = idx / n
	l = idx % n
	return i, j, k, l
}

// Data exposes the flat backing slice, ordered by the packed index.
func (e *ERI) Data() []float64 {
	return e.data
}
