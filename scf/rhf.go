// rhf.go --  This file is part of goSCF project.
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

// Package scf runs restricted Hartree-Fock on precomputed molecular
// integrals, accelerating the self-consistent-field iteration with DIIS
// extrapolation of the Fock matrix. Where the integrals come from (libcint,
// psi4, a text dump on disk) is not this package's business.
package scf

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"

	"goscf/diis"
)

// System carries everything an RHF run needs: the overlap, kinetic and
// nuclear-attraction matrices, the two-electron integrals, the nuclear
// repulsion energy, and the electron count. All precomputed elsewhere.
type System struct {
	S, T, V *mat.Dense
	ERI     *ERI
	Enuc    float64
	Nelec   int
}

// Options controls the SCF iteration. The zero value picks the defaults.
type Options struct {
	MaxSteps int     // default 50
	TolE     float64 // energy convergence, default 1e-8
	TolD     float64 // dRMS convergence, default 1e-6
	DIIS     int     // DIIS history cap, default 8
	Logger   *log.Logger
}

const (
	defaultMaxSteps = 50
	defaultTolE     = 1e-8
	defaultTolD     = 1e-6
	defaultDIIS     = 8
)

// Iteration is one SCF step's record, kept for logging and plotting.
type Iteration struct {
	Step   int
	Energy float64 // total energy at this step
	DeltaE float64
	DRMS   float64
}

// Result of an SCF run. A run that exhausts MaxSteps is not an error;
// Converged reports it and the fields hold the last iterate.
type Result struct {
	Energy     float64 // electronic + nuclear repulsion
	Electronic float64
	Converged  bool
	Iterations []Iteration
	C          *mat.Dense // MO coefficients, columns ordered by energy
	Eps        []float64  // orbital energies, ascending
	D          *mat.Dense // occupation-1 density, D = C_occ C_occ^T
	Fallbacks  int        // DIIS steps that fell back to the raw Fock matrix
}

// RHF runs the DIIS-accelerated self-consistent-field iteration to
// convergence or opts.MaxSteps. opts may be nil.
func (sys *System) RHF(opts *Options) (*Result, error) {
	o := withDefaults(opts)
	n, err := sys.check()
	if err != nil {
		return nil, err
	}
	nocc := sys.Nelec / 2

	h1 := mat.NewDense(n, n, nil)
	h1.Add(sys.T, sys.V)

	a, err := SqrtInverse(sys.S)
	if err != nil {
		return nil, err
	}

	// Core-Hamiltonian initial guess.
	c, _, err := diagonalize(h1, a)
	if err != nil {
		return nil, err
	}
	d := density(c, nocc)

	ext := diis.New(&diis.Options{MaxHistory: o.DIIS})
	res := &Result{C: c, D: d}
	ePrev := 0.0

	for step := 1; step <= o.MaxSteps; step++ {
		g := twoElectron(d, sys.ERI)
		f := mat.NewDense(n, n, nil)
		f.Add(h1, g)

		eElec := electronicEnergy(d, h1, g)
		r := fockResidual(f, d, sys.S, a)
		fNext, err := ext.Step(f, r)
		if err != nil {
			return nil, err
		}
		dRMS := ext.RMS()
		dE := eElec - ePrev
		ePrev = eElec

		res.Electronic = eElec
		res.Energy = eElec + sys.Enuc
		res.Iterations = append(res.Iterations, Iteration{
			Step:   step,
			Energy: res.Energy,
			DeltaE: dE,
			DRMS:   dRMS,
		})
		if o.Logger != nil {
			o.Logger.Println("Iteration ", step, ". Energy = ", res.Energy, ", dE = ", dE, ", dRMS = ", dRMS)
		}

		if math.Abs(dE) < o.TolE && dRMS < o.TolD {
			if o.Logger != nil {
				o.Logger.Println("SCF converged after step ", step)
			}
			res.Converged = true
			break
		}

		var eps []float64
		c, eps, err = diagonalize(fNext, a)
		if err != nil {
			return nil, err
		}
		d = density(c, nocc)
		res.C, res.D, res.Eps = c, d, slices.Clone(eps)
	}

	res.Fallbacks = ext.Fallbacks()
	if !res.Converged && o.Logger != nil {
		o.Logger.Println("Warning! SCF NOT converged after step ", o.MaxSteps)
	}
	// The orbitals of the converged iterate: diagonalize the final Fock
	// matrix once more so Eps and C match the reported energy.
	if res.Converged {
		g := twoElectron(res.D, sys.ERI)
		f := mat.NewDense(n, n, nil)
		f.Add(h1, g)
		c, eps, err := diagonalize(f, a)
		if err != nil {
			return nil, err
		}
		res.C = c
		res.Eps = slices.Clone(eps)
		res.D = density(c, nocc)
	}
	return res, nil
}

func withDefaults(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	if o.TolE <= 0 {
		o.TolE = defaultTolE
	}
	if o.TolD <= 0 {
		o.TolD = defaultTolD
	}
	if o.DIIS <= 0 {
		o.DIIS = defaultDIIS
	}
	return o
}

func (sys *System) check() (int, error) {
	n, c := sys.S.Dims()
	if n != c {
		return 0, ErrDimensionMismatch
	}
	for _, m := range []*mat.Dense{sys.T, sys.V} {
		r, c := m.Dims()
		if r != n || c != n {
			return 0, ErrDimensionMismatch
		}
	}
	if sys.ERI == nil || sys.ERI.N() != n {
		return 0, fmt.Errorf("%w: ERI over %d functions, matrices over %d", ErrDimensionMismatch, eriN(sys.ERI), n)
	}
	if sys.Nelec%2 != 0 {
		return 0, ErrOddElectrons
	}
	if sys.Nelec <= 0 || sys.Nelec/2 > n {
		return 0, ErrElectronCount
	}
	return n, nil
}

func eriN(e *ERI) int {
	if e == nil {
		return 0
	}
	return e.N()
}

// diagonalize solves FC = SCe in the orthogonalized basis: eigensolve
// A F A, then back-transform the eigenvectors with A. Eigenvalues come out
// ascending, so the occupied orbitals are the leading columns.
func diagonalize(f mat.Matrix, a *mat.Dense) (*mat.Dense, []float64, error) {
	n, _ := a.Dims()
	var fo mat.Dense
	fo.Mul(a, f)
	fo.Mul(&fo, a)

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = fo.At(i, j)
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, ErrEigenFailed
	}
	var ev mat.Dense
	eig.VectorsTo(&ev)
	var c mat.Dense
	c.Mul(a, &ev)
	return &c, eig.Values(nil), nil
}

// density builds D = C_occ C_occ^T (occupation-1 convention: the factor 2
// for closed shells lives in the energy and Fock expressions).
func density(c *mat.Dense, nocc int) *mat.Dense {
	n, _ := c.Dims()
	occ := c.Slice(0, n, 0, nocc)
	d := mat.NewDense(n, n, nil)
	d.Mul(occ, occ.T())
	return d
}

// electronicEnergy is E = Sum_ij D[i][j] * (2 H1[i][j] + G[i][j]).
func electronicEnergy(d, h1, g *mat.Dense) float64 {
	var m mat.Dense
	m.Scale(2, h1)
	m.Add(&m, g)
	m.MulElem(&m, d)
	return mat.Sum(&m)
}

// fockResidual is the orthogonalized commutator A (FDS - SDF) A, zero at
// self-consistency, used as the DIIS error vector.
func fockResidual(f, d, s, a *mat.Dense) *mat.Dense {
	var fds, sdf mat.Dense
	fds.Mul(f, d)
	fds.Mul(&fds, s)
	sdf.Mul(s, d)
	sdf.Mul(&sdf, f)
	fds.Sub(&fds, &sdf)
	fds.Mul(a, &fds)
	fds.Mul(&fds, a)
	return &fds
}
