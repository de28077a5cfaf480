// mathutil.go --  This file is part of the goqint project.
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

import "math"

// maxFact bounds the factorial tables. The largest argument reachable from
// the kernel is i1+i2 in the repulsion B-array, i.e. 4x the maximum
// supported angular momentum; 32 leaves ample headroom through l = 8.
const maxFact = 33

// fact[n] = n!, fact2[n] = n!! with fact2[0] = fact2[-1] := 1.
// Filled once in init and read-only afterwards, so the parallel assembly
// phases may share them without synchronization.
var (
	fact  [maxFact]float64
	fact2 [maxFact]float64
)

func init() {
	fact[0] = 1
	fact[1] = 1
	fact2[0] = 1
	fact2[1] = 1
	for n := 2; n < maxFact; n++ {
		fact[n] = float64(n) * fact[n-1]
		fact2[n] = float64(n) * fact2[n-2]
	}
}

// doubleFactorial returns n!! for n >= -1.
func doubleFactorial(n int) float64 {
	if n <= 0 {
		return 1.0
	}
	return fact2[n]
}

// binomial returns the binomial coefficient a over b for 0 <= b <= a.
func binomial(a, b int) float64 {
	return fact[a] / (fact[b] * fact[a-b])
}

// binomialPrefactor returns the coefficient of x^s in the expansion of
// (x+xpa)^ia (x+xpb)^ib, the f_s helper of the Gaussian integral
// recursions.
func binomialPrefactor(s, ia, ib int, xpa, xpb float64) float64 {
	sum := 0.0
	for t := 0; t <= s; t++ {
		if s-ia <= t && t <= ib {
			sum += binomial(ia, s-t) *
				binomial(ib, t) *
				math.Pow(xpa, float64(ia-s+t)) *
				math.Pow(xpb, float64(ib-t))
		}
	}
	return sum
}

// negOnePow returns (-1)^n.
func negOnePow(n int) float64 {
	if n&1 == 1 {
		return -1.0
	}
	return 1.0
}

// factRatio2 returns a! / b! / (a-2b)!.
func factRatio2(a, b int) float64 {
	return fact[a] / fact[b] / fact[a-2*b]
}
