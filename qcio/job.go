// job.go --  This file is part of goSCF project.
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
package qcio

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"goscf/scf"
)

// ErrBadJob indicates a job file missing required fields.
var ErrBadJob = errors.New("qcio: bad job file")

// Job describes one run: where the precomputed integrals live, the
// electron count and nuclear repulsion the integral program reported, and
// the SCF controls. File names are resolved against the job file's
// directory.
//
//	title = "H2 / STO-3G at 1.4 a.u."
//	nelec = 2
//	enuc  = 0.7142857
//	mp2   = true
//	plot  = "h2"
//
//	[files]
//	s   = "S.txt"
//	t   = "T.txt"
//	v   = "V.txt"
//	eri = "eri.gz"
//
//	[scf]
//	maxsteps = 50
//	tole     = 1e-8
//	told     = 1e-6
//	diis     = 8
type Job struct {
	Title string
	Nelec int
	Enuc  float64
	MP2   bool
	Plot  string
	Files JobFiles
	SCF   JobSCF
}

// JobFiles names the four integral files.
type JobFiles struct {
	S   string
	T   string
	V   string
	ERI string
}

// JobSCF carries the SCF controls; zero values defer to scf defaults.
type JobSCF struct {
	MaxSteps int
	TolE     float64
	TolD     float64
	DIIS     int
}

// ReadJob parses and validates a TOML job file.
func ReadJob(fname string) (*Job, error) {
	var job Job
	if _, err := toml.DecodeFile(fname, &job); err != nil {
		return nil, fmt.Errorf("qcio: %s: %w", fname, err)
	}
	if job.Nelec <= 0 {
		return nil, fmt.Errorf("%w: %s: nelec must be positive", ErrBadJob, fname)
	}
	for name, f := range map[string]string{
		"files.s": job.Files.S, "files.t": job.Files.T,
		"files.v": job.Files.V, "files.eri": job.Files.ERI,
	} {
		if f == "" {
			return nil, fmt.Errorf("%w: %s: missing %s", ErrBadJob, fname, name)
		}
	}
	return &job, nil
}

// Load reads a job file and assembles the system it names. Integral file
// names are resolved relative to the job file.
func Load(jobPath string) (*scf.System, *Job, error) {
	job, err := ReadJob(jobPath)
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Dir(jobPath)

	s, err := ReadMatrix(filepath.Join(dir, job.Files.S))
	if err != nil {
		return nil, nil, err
	}
	t, err := ReadMatrix(filepath.Join(dir, job.Files.T))
	if err != nil {
		return nil, nil, err
	}
	v, err := ReadMatrix(filepath.Join(dir, job.Files.V))
	if err != nil {
		return nil, nil, err
	}
	eri, err := ReadERI(filepath.Join(dir, job.Files.ERI))
	if err != nil {
		return nil, nil, err
	}

	sys := &scf.System{
		S:     s,
		T:     t,
		V:     v,
		ERI:   eri,
		Enuc:  job.Enuc,
		Nelec: job.Nelec,
	}
	return sys, job, nil
}
