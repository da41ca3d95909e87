// eri_test.go --  This file is part of goSCF project.
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

	"goscf/scf"
)

// TestERI_PackUnpack walks every index of a small tensor through
// Set/At/Unpack.
func TestERI_PackUnpack(t *testing.T) {
	n := 3
	eri := scf.NewERI(n)
	v := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					eri.Set(i, j, k, l, v)
					v++
				}
			}
		}
	}
	for idx, got := range eri.Data() {
		i, j, k, l := eri.Unpack(idx)
		assert.Equal(t, eri.At(i, j, k, l), got, "idx %d -> (%d %d %d %d)", idx, i, j, k, l)
	}
	assert.Equal(t, float64(n*n*n*n-1), eri.At(n-1, n-1, n-1, n-1))
}

// TestERI_SetSym writes all eight permutation images.
func TestERI_SetSym(t *testing.T) {
	eri := scf.NewERI(4)
	eri.SetSym(0, 1, 2, 3, 0.7)
	images := [][4]int{
		{0, 1, 2, 3}, {1, 0, 2, 3}, {0, 1, 3, 2}, {1, 0, 3, 2},
		{2, 3, 0, 1}, {3, 2, 0, 1}, {2, 3, 1, 0}, {3, 2, 1, 0},
	}
	for _, im := range images {
		assert.Equal(t, 0.7, eri.At(im[0], im[1], im[2], im[3]), "image %v", im)
	}
	assert.Zero(t, eri.At(0, 0, 0, 0))
}
