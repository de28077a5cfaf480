// main.go --  This file is part of the goqint project.
//
//	goqint is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Command goqint evaluates the full integral set for a hydrogen molecule
// in the STO-3G basis and prints the assembled matrices. It is a smoke
// test for the engine and a reference for the export layout.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"

	"goqint"
)

var (
	InfoLogger   *log.Logger
	OutputLogger *log.Logger
)

var elemSymbols = []string{"X", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne"}

func init() {
	InfoLogger = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	OutputLogger = log.New(os.Stdout, "", 0)
}

// sto3gHydrogen returns the STO-3G 1s contraction for a hydrogen atom at r.
func sto3gHydrogen(r goqint.Vec3) *goqint.CGF {
	cgf := goqint.NewCGF(r)
	cgf.AddGTO(0.154329, 3.425251, 0, 0, 0)
	cgf.AddGTO(0.535328, 0.623914, 0, 0, 0)
	cgf.AddGTO(0.444635, 0.168855, 0, 0, 0)
	return cgf
}

func printMat(name string, m mat.Matrix) {
	fa := mat.Formatted(m, mat.Prefix("    "), mat.Squeeze())
	OutputLogger.Printf("%s:\n    %.8f\n", name, fa)
}

func main() {
	if len(os.Args) > 1 {
		nprocs, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatal("Invalid number of threads: ", os.Args[1])
		}
		runtime.GOMAXPROCS(nprocs)
		InfoLogger.Println("Number of threads set to " + os.Args[1] + ".")
	}

	// H2 at the experimental bond distance of 1.4 a.u.
	positions := []goqint.Vec3{{0, 0, 0}, {0, 0, 1.4}}
	charges := make([]int, len(positions))
	for i := range charges {
		charges[i] = slices.Index(elemSymbols, "H")
	}
	cgfs := []*goqint.CGF{
		sto3gHydrogen(positions[0]),
		sto3gHydrogen(positions[1]),
	}

	integrator := goqint.NewIntegrator()
	info := integrator.BuildInfo()
	InfoLogger.Printf("goqint on %s, %d CPUs, %d workers",
		info.GoVersion, info.NumCPU, info.Workers)

	res, err := integrator.Evaluate(cgfs, charges, positions)
	if err != nil {
		log.Fatal(err)
	}

	printMat("Overlap integrals S", res.S)
	printMat("Kinetic energy integrals T", res.T)
	printMat("Nuclear attraction integrals V", res.V)

	OutputLogger.Println("Two-electron integrals (canonical slots):")
	for i, v := range res.TE {
		OutputLogger.Printf("    [%d] % .8f\n", i, v)
	}

	flat := res.Flatten()
	fmt.Printf("Export buffer: %d values (3 x %d matrix entries + %d two-electron slots)\n",
		len(flat), res.N*res.N, len(res.TE))
}
