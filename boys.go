// boys.go --  This file is part of the goqint project.
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
package goqint

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// boysSmall clamps the Boys argument away from zero; below this the
// regularized-gamma quotient loses precision while F_m is already flat at
// its x -> 0 limit 1/(2m+1).
const boysSmall = 1e-8

// boys evaluates the Boys function
//
//	F_m(x) = int_0^1 t^{2m} exp(-x t^2) dt
//
// for non-negative integer order m and non-negative argument x, via the
// lower incomplete gamma function:
//
//	F_m(x) = gamma(m+1/2, x) / (2 x^{m+1/2})
func boys(m int, x float64) float64 {
	if x < boysSmall {
		x = boysSmall
	}
	a := float64(m) + 0.5
	return 0.5 * math.Pow(x, -a) * mathext.GammaIncReg(a, x) * math.Gamma(a)
}
