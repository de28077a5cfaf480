// overlap.go --  This file is part of the goqint project.
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

// Overlap computes the overlap integral <cgf1|cgf2> between two
// contracted Gaussian functions.
func Overlap(cgf1, cgf2 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff * overlapGTO(g1, g2)
		}
	}
	return sum
}

// OverlapDeriv computes the derivative of <cgf1|cgf2> with respect to
// coordinate coord (0=x, 1=y, 2=z) of the given nucleus. Only functions
// centered on that nucleus contribute; when both or neither center
// coincides with it the derivative vanishes by translational symmetry.
func OverlapDeriv(cgf1, cgf2 *CGF, nucleus Vec3, coord int) float64 {
	n1 := cgf1.atNucleus(nucleus)
	n2 := cgf2.atNucleus(nucleus)
	if n1 == n2 {
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			var t1, t2 float64
			if n1 {
				t1 = overlapDerivGTO(g1, g2, coord)
			}
			if n2 {
				t2 = overlapDerivGTO(g2, g1, coord)
			}
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff * (t1 + t2)
		}
	}
	return sum
}

func overlapGTO(g1, g2 GTO) float64 {
	return overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R,
		g2.Alpha, g2.L, g2.M, g2.N, g2.R)
}

// overlapDerivGTO differentiates <g1|g2> towards the center coordinate of
// g1 using the Gaussian derivative recurrence
//
//	d/dAx <l> = 2 alpha <l+1> - l <l-1>
//
// where the <l-1> term is absent for an s-type power.
func overlapDerivGTO(g1, g2 GTO, coord int) float64 {
	ang := [3]int{g1.L, g1.M, g1.N}
	l := ang[coord]

	ang[coord] = l + 1
	plus := overlap(g1.Alpha, ang[0], ang[1], ang[2], g1.R,
		g2.Alpha, g2.L, g2.M, g2.N, g2.R)
	if l == 0 {
		return 2.0 * g1.Alpha * plus
	}

	ang[coord] = l - 1
	minus := overlap(g1.Alpha, ang[0], ang[1], ang[2], g1.R,
		g2.Alpha, g2.L, g2.M, g2.N, g2.R)
	return 2.0*g1.Alpha*plus - float64(l)*minus
}

// overlap evaluates the primitive overlap integral: the Gaussian product
// theorem prefactor times three independent one-dimensional integrals.
// Negative powers, which arise from shifted-momentum calls in the kinetic
// and derivative routines, contribute zero.
func overlap(alpha1 float64, l1, m1, n1 int, a Vec3,
	alpha2 float64, l2, m2, n2 int, b Vec3) float64 {

	if l1 < 0 || m1 < 0 || n1 < 0 || l2 < 0 || m2 < 0 || n2 < 0 {
		return 0.0
	}

	rab2 := a.Sub(b).Norm2()
	gamma := alpha1 + alpha2
	p := gaussianProductCenter(alpha1, a, alpha2, b)

	pre := math.Pow(math.Pi/gamma, 1.5) * math.Exp(-alpha1*alpha2*rab2/gamma)
	wx := overlap1D(l1, l2, p[0]-a[0], p[0]-b[0], gamma)
	wy := overlap1D(m1, m2, p[1]-a[1], p[1]-b[1], gamma)
	wz := overlap1D(n1, n2, p[2]-a[2], p[2]-b[2], gamma)

	return pre * wx * wy * wz
}

// overlap1D computes one Cartesian factor of the overlap integral: a
// finite sum over even terms weighted by double factorials.
func overlap1D(l1, l2 int, x1, x2, gamma float64) float64 {
	sum := 0.0
	for i := 0; i <= (l1+l2)/2; i++ {
		sum += binomialPrefactor(2*i, l1, l2, x1, x2) *
			doubleFactorial(2*i-1) / math.Pow(2*gamma, float64(i))
	}
	return sum
}
