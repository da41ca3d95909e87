// extrapolator_test.go --  This file is part of goSCF project.
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
package diis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"goscf/diis"
)

// TestExtrapolator_FirstStepPassthrough: with an empty history the trial
// comes back untouched, same reference.
func TestExtrapolator_FirstStepPassthrough(t *testing.T) {
	e := diis.New(nil)
	trial := mat.NewDense(1, 2, []float64{2, 3})
	residual := mat.NewDense(1, 2, []float64{1, 0})

	got, err := e.Step(trial, residual)
	require.NoError(t, err)
	assert.Same(t, trial, got)
	assert.Equal(t, 1, e.Len())
}

// TestExtrapolator_TwoVector reproduces the reference scenario:
// trials [1,0] and [0,1] with orthonormal residuals extrapolate to
// [0.5, 0.5].
func TestExtrapolator_TwoVector(t *testing.T) {
	e := diis.New(nil)
	t1 := mat.NewDense(1, 2, []float64{1, 0})
	r1 := mat.NewDense(1, 2, []float64{1, 0})
	t2 := mat.NewDense(1, 2, []float64{0, 1})
	r2 := mat.NewDense(1, 2, []float64{0, 1})

	_, err := e.Step(t1, r1)
	require.NoError(t, err)
	got, err := e.Step(t2, r2)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, got.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, got.At(0, 1), 1e-12)
	assert.Zero(t, e.Fallbacks())
}

// TestExtrapolator_SingularFallback: identical residuals must not surface a
// solve failure; the latest trial comes back unmodified.
func TestExtrapolator_SingularFallback(t *testing.T) {
	e := diis.New(nil)
	r := mat.NewDense(1, 2, []float64{0.5, 0.5})
	t1 := mat.NewDense(1, 2, []float64{1, 2})
	t2 := mat.NewDense(1, 2, []float64{3, 4})

	_, err := e.Step(t1, r)
	require.NoError(t, err)
	got, err := e.Step(t2, r)
	require.NoError(t, err)

	assert.Same(t, t2, got)
	assert.Equal(t, 1, e.Fallbacks())
}

// TestExtrapolator_ZeroResidualIdempotence: an exactly converged iterate
// appended on top of an identical converged iterate reproduces that trial.
func TestExtrapolator_ZeroResidualIdempotence(t *testing.T) {
	e := diis.New(nil)
	zero := mat.NewDense(1, 3, nil)
	trial := mat.NewDense(1, 3, []float64{7, -1, 0.5})

	_, err := e.Step(trial, zero)
	require.NoError(t, err)
	got, err := e.Step(trial, zero)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(trial, got, 1e-14))
	assert.Zero(t, e.RMS())
}

// TestExtrapolator_RMS: residual [3,4] has mean square 12.5.
func TestExtrapolator_RMS(t *testing.T) {
	e := diis.New(nil)
	trial := mat.NewDense(1, 2, []float64{0, 0})
	residual := mat.NewDense(1, 2, []float64{3, 4})

	_, err := e.Step(trial, residual)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), e.RMS(), 1e-14)
}

// TestExtrapolator_DimensionMismatch surfaces the append failure.
func TestExtrapolator_DimensionMismatch(t *testing.T) {
	e := diis.New(nil)
	trial := mat.NewDense(2, 2, nil)
	residual := mat.NewDense(1, 2, nil)

	_, err := e.Step(trial, residual)
	assert.ErrorIs(t, err, diis.ErrDimensionMismatch)
}

// TestExtrapolator_BoundedHistory: Options.MaxHistory caps Len.
func TestExtrapolator_BoundedHistory(t *testing.T) {
	e := diis.New(&diis.Options{MaxHistory: 2})
	for k := 0; k < 5; k++ {
		trial := mat.NewDense(1, 2, []float64{float64(k), 1})
		residual := mat.NewDense(1, 2, []float64{1.0 / float64(k+1), float64(k)})
		_, err := e.Step(trial, residual)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, e.Len())
}
