// main.go --  This file is part of goSCF project.
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
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"goscf/convplot"
	"goscf/mp2"
	"goscf/qcio"
	"goscf/scf"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

func initLog(fname string) error {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)
	return nil
}

func appInfo() {
	OutputLogger.Print("\n" +
		"                 ____   ____  _____\n" +
		"   __ _  ___    / ___| / ___||  ___|\n" +
		"  / _` |/ _ \\   \\___ \\| |    | |_\n" +
		" | (_| | (_) |   ___) | |___ |  _|    DIIS-accelerated restricted Hartree-Fock\n" +
		"  \\__, |\\___/   |____/ \\____||_|      on precomputed molecular integrals\n" +
		"  |___/\n\n")
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

// outName derives the output file from the job file name
// (job.toml -> job.out).
func outName(jobPath string) string {
	split := strings.Split(jobPath, ".")
	ext := split[len(split)-1]
	if len(split) == 1 {
		return jobPath + ".out"
	}
	return jobPath[0:len(jobPath)-len(ext)] + "out"
}

func newRootCmd() *cobra.Command {
	var (
		maxSteps int
		diisCap  int
		tolE     float64
		tolD     float64
		doMP2    bool
		plotBase string
	)

	cmd := &cobra.Command{
		Use:   "goscf job.toml",
		Short: "goSCF - restricted Hartree-Fock with DIIS",
		Long: `goSCF runs a DIIS-accelerated restricted Hartree-Fock calculation on
precomputed molecular integrals (overlap, kinetic, nuclear attraction,
two-electron repulsion) named by a TOML job file, and optionally the MP2
correlation correction and convergence plots.

Integral evaluation is out of scope: dump the tensors from your integral
program of choice in the formats of the qcio package.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scf.Options{
				MaxSteps: maxSteps,
				TolE:     tolE,
				TolD:     tolD,
				DIIS:     diisCap,
			}
			return run(args[0], opts, cmd.Flags().Changed("mp2"), doMP2, cmd.Flags().Changed("plot"), plotBase)
		},
	}

	cmd.Flags().IntVar(&maxSteps, "maxsteps", 0, "maximum SCF iterations (overrides job file)")
	cmd.Flags().IntVar(&diisCap, "diis", 0, "DIIS history cap (overrides job file)")
	cmd.Flags().Float64Var(&tolE, "tole", 0, "energy convergence tolerance (overrides job file)")
	cmd.Flags().Float64Var(&tolD, "told", 0, "dRMS convergence tolerance (overrides job file)")
	cmd.Flags().BoolVar(&doMP2, "mp2", false, "compute the MP2 correction (overrides job file)")
	cmd.Flags().StringVar(&plotBase, "plot", "", "base name for convergence plots (overrides job file)")
	return cmd
}

func run(jobPath string, flagOpts scf.Options, mp2Set, doMP2, plotSet bool, plotBase string) error {
	out := outName(jobPath)
	if err := initLog(out); err != nil {
		return err
	}
	fmt.Println("Output file: ", out)

	InfoLogger.Println("Starting goSCF...")
	appInfo()
	printOutputDelimiter()

	sys, job, err := qcio.Load(jobPath)
	if err != nil {
		ErrorLogger.Println("Cannot load job: ", err)
		return err
	}
	if job.Title != "" {
		OutputLogger.Println("Job: ", job.Title)
	}
	OutputLogger.Println("Electrons: ", sys.Nelec, ", nuclear repulsion: ", sys.Enuc, " a.u.")
	printOutputDelimiter()

	opts := scf.Options{
		MaxSteps: job.SCF.MaxSteps,
		TolE:     job.SCF.TolE,
		TolD:     job.SCF.TolD,
		DIIS:     job.SCF.DIIS,
		Logger:   OutputLogger,
	}
	// Flags beat the job file where given.
	if flagOpts.MaxSteps > 0 {
		opts.MaxSteps = flagOpts.MaxSteps
	}
	if flagOpts.TolE > 0 {
		opts.TolE = flagOpts.TolE
	}
	if flagOpts.TolD > 0 {
		opts.TolD = flagOpts.TolD
	}
	if flagOpts.DIIS > 0 {
		opts.DIIS = flagOpts.DIIS
	}

	res, err := sys.RHF(&opts)
	if err != nil {
		ErrorLogger.Println("SCF failed: ", err)
		return err
	}
	printOutputDelimiter()
	if !res.Converged {
		WarningLogger.Println("SCF did not converge; energies below are from the last iterate.")
		fmt.Println("Warning! SCF NOT converged.")
	}
	if res.Fallbacks > 0 {
		InfoLogger.Println("DIIS fell back to the raw Fock matrix in ", res.Fallbacks, " iteration(s).")
	}
	OutputLogger.Println("Nuclei Repulsion Energy: ", sys.Enuc, " a.u.")
	OutputLogger.Println("Final total energy = ", res.Energy, " a.u.")
	fmt.Println("Final total energy = ", res.Energy, " a.u.")

	wantMP2 := job.MP2
	if mp2Set {
		wantMP2 = doMP2
	}
	if wantMP2 {
		e2, err := mp2.Correction(sys, res)
		if err != nil {
			ErrorLogger.Println("MP2 failed: ", err)
			return err
		}
		OutputLogger.Println("MP2 correlation energy = ", e2, " a.u.")
		OutputLogger.Println("Total energy (RHF+MP2) = ", res.Energy+e2, " a.u.")
		fmt.Println("Total energy (RHF+MP2) = ", res.Energy+e2, " a.u.")
	}

	base := job.Plot
	if plotSet {
		base = plotBase
	}
	if base != "" {
		if err := convplot.Convergence(res.Iterations, base+"_energy.png"); err != nil {
			return err
		}
		if err := convplot.ResidualNorm(res.Iterations, base+"_drms.png"); err != nil {
			return err
		}
		OutputLogger.Println("Convergence plots written to ", base+"_energy.png", " and ", base+"_drms.png")
	}

	printOutputDelimiter()
	InfoLogger.Println("Exiting goSCF...")
	fmt.Println("goSCF done.")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
