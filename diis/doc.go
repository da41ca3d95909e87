// doc.go --  This file is part of goSCF project.
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

// Package diis implements Direct Inversion of the Iterative Subspace
// (Pulay mixing), a convergence accelerator for fixed-point iterations.
//
// The driver feeds the Extrapolator one (trial, residual) pair per
// iteration. Trials and residuals are dense gonum matrices of a fixed
// shape; what they mean physically (Fock matrices, orbital gradients,
// dipole response vectors, ...) is the driver's business. Each step the
// extrapolator solves Pulay's constrained least-squares system over the
// recorded residuals and returns the linear combination of past trials
// that minimizes the predicted residual norm, subject to the coefficients
// summing to one.
//
// DIIS is an accelerator, not a correctness requirement: when the Pulay
// system is singular (for instance, duplicate residuals) the extrapolator
// silently falls back to the latest trial and the iteration proceeds
// unaccelerated.
package diis
