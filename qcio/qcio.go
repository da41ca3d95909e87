// qcio.go --  This file is part of goSCF project.
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

// Package qcio moves integral data between disk and memory: whitespace
// text tables for matrices, gzip-compressed sparse lists for the
// two-electron integrals, and TOML job files tying a run together.
package qcio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"

	"goscf/scf"
)

var (
	// ErrEmptyFile indicates a matrix file with no rows.
	ErrEmptyFile = errors.New("qcio: no data in file")

	// ErrRaggedRows indicates a matrix file whose rows disagree in length.
	ErrRaggedRows = errors.New("qcio: rows disagree in length")

	// ErrBadERI indicates a malformed two-electron integral file.
	ErrBadERI = errors.New("qcio: malformed ERI file")
)

// WriteMatrix writes one row per line. The format keeps enough digits to
// reproduce the float64 on read-back.
func WriteMatrix(m *mat.Dense, fname string) error {
	var sb strings.Builder
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fmt.Fprintf(&sb, " %.16e", m.At(i, j))
		}
		sb.WriteByte('\n')
	}
	return os.WriteFile(fname, []byte(sb.String()), 0644)
}

// ReadMatrix reads a whitespace-separated table, one matrix row per
// non-empty line.
func ReadMatrix(fname string) (*mat.Dense, error) {
	lines, err := readLines(fname)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	for i, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		row := make([]float64, len(words))
		for j, w := range words {
			v, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, fmt.Errorf("qcio: %s line %d: %w", fname, i+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, fname)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: %s", ErrRaggedRows, fname)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// WriteERI writes the tensor as a gzip-compressed sparse list: a header
// line with the basis size, then one "i j k l value" line per nonzero
// canonical entry (j <= i, l <= k, kl-pair <= ij-pair). The tensor is
// assumed to carry the 8-fold permutation symmetry of real integrals;
// ReadERI restores the dropped images.
func WriteERI(e *scf.ERI, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	bw := bufio.NewWriter(zw)
	fmt.Fprintln(bw, e.N())
	for idx, v := range e.Data() {
		if v == 0 {
			continue
		}
		i, j, k, l := e.Unpack(idx)
		if !canonical(i, j, k, l) {
			continue
		}
		fmt.Fprintf(bw, "%d %d %d %d %.16e\n", i, j, k, l, v)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadERI reads a tensor written by WriteERI, scattering each entry over
// its permutation images.
func ReadERI(fname string) (*scf.ERI, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	scanner := bufio.NewScanner(zr)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: %s: missing header", ErrBadERI, fname)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %s: bad basis size", ErrBadERI, fname)
	}
	eri := scf.NewERI(n)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if len(words) != 5 {
			return nil, fmt.Errorf("%w: %s: %q", ErrBadERI, fname, scanner.Text())
		}
		idx := make([]int, 4)
		for m, w := range words[:4] {
			idx[m], err = strconv.Atoi(w)
			if err != nil || idx[m] < 0 || idx[m] >= n {
				return nil, fmt.Errorf("%w: %s: index %q", ErrBadERI, fname, w)
			}
		}
		v, err := strconv.ParseFloat(words[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: value %q", ErrBadERI, fname, words[4])
		}
		eri.SetSym(idx[0], idx[1], idx[2], idx[3], v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return eri, nil
}

// canonical reports whether (ij|kl) is the representative of its 8-fold
// permutation class.
func canonical(i, j, k, l int) bool {
	if j > i || l > k {
		return false
	}
	ij := i*(i+1)/2 + j
	kl := k*(k+1)/2 + l
	return kl <= ij
}

func readLines(fname string) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result, scanner.Err()
}
