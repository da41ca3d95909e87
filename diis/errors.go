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
package diis

import "errors"

var (
	// ErrDimensionMismatch indicates a trial/residual pair whose shape
	// disagrees, either between the two matrices or with the pairs
	// already recorded.
	ErrDimensionMismatch = errors.New("diis: trial/residual shape disagrees with history")

	// ErrSingularExtrapolation indicates a singular or ill-conditioned
	// Pulay system. Recoverable: use the latest trial unextrapolated.
	ErrSingularExtrapolation = errors.New("diis: singular Pulay system")

	// ErrEmptyHistory indicates a coefficient solve over zero recorded
	// pairs, which is a caller bug.
	ErrEmptyHistory = errors.New("diis: coefficient solve on empty history")
)
