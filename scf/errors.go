// errors.go --  This file is part of goSCF project.
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

import "errors"

var (
	// ErrDimensionMismatch indicates integral inputs of disagreeing sizes.
	ErrDimensionMismatch = errors.New("scf: integral matrices disagree in size")

	// ErrOddElectrons indicates an odd electron count, which restricted HF
	// cannot describe.
	ErrOddElectrons = errors.New("scf: restricted HF needs an even electron count")

	// ErrElectronCount indicates an electron count that does not fit the
	// basis (non-positive, or more doubly occupied orbitals than basis
	// functions).
	ErrElectronCount = errors.New("scf: electron count incompatible with basis size")

	// ErrEigenFailed indicates a failed symmetric eigendecomposition.
	ErrEigenFailed = errors.New("scf: symmetric eigendecomposition failed")

	// ErrOverlapNotPD indicates a non-positive-definite overlap matrix,
	// usually a linearly dependent basis.
	ErrOverlapNotPD = errors.New("scf: overlap matrix is not positive definite")
)
