// kinetic.go --  This file is part of the goqint project.
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

// Kinetic computes the kinetic energy integral <cgf1|-1/2 nabla^2|cgf2>.
func Kinetic(cgf1, cgf2 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff * kineticGTO(g1, g2)
		}
	}
	return sum
}

// KineticDeriv computes the derivative of the kinetic energy integral with
// respect to coordinate coord of the given nucleus.
func KineticDeriv(cgf1, cgf2 *CGF, nucleus Vec3, coord int) float64 {
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
				t1 = kineticDerivGTO(g1, g2, coord)
			}
			if n2 {
				t2 = kineticDerivGTO(g2, g1, coord)
			}
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff * (t1 + t2)
		}
	}
	return sum
}

// kineticGTO expresses the primitive kinetic integral as a linear
// combination of overlap integrals with the momentum of g2 shifted by
// +-2 along each axis plus a term in g2's own momentum and exponent.
// Shifts into negative momentum carry an explicitly zero coefficient.
func kineticGTO(g1, g2 GTO) float64 {
	term0 := g2.Alpha * (2.0*float64(g2.L+g2.M+g2.N) + 3.0) * overlapGTO(g1, g2)

	shifted2 := overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L+2, g2.M, g2.N, g2.R) +
		overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M+2, g2.N, g2.R) +
		overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M, g2.N+2, g2.R)
	term1 := -2.0 * g2.Alpha * g2.Alpha * shifted2

	term2 := 0.0
	if g2.L >= 2 {
		term2 += float64(g2.L*(g2.L-1)) *
			overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L-2, g2.M, g2.N, g2.R)
	}
	if g2.M >= 2 {
		term2 += float64(g2.M*(g2.M-1)) *
			overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M-2, g2.N, g2.R)
	}
	if g2.N >= 2 {
		term2 += float64(g2.N*(g2.N-1)) *
			overlap(g1.Alpha, g1.L, g1.M, g1.N, g1.R, g2.Alpha, g2.L, g2.M, g2.N-2, g2.R)
	}

	return term0 + term1 - 0.5*term2
}

// kineticDerivGTO differentiates the primitive kinetic integral towards
// the center coordinate of g1 via the same shifted-momentum recurrence as
// overlapDerivGTO.
func kineticDerivGTO(g1, g2 GTO, coord int) float64 {
	ang := [3]int{g1.L, g1.M, g1.N}
	l := ang[coord]

	ang[coord] = l + 1
	shifted := g1
	shifted.L, shifted.M, shifted.N = ang[0], ang[1], ang[2]
	plus := kineticGTO(shifted, g2)
	if l == 0 {
		return 2.0 * g1.Alpha * plus
	}

	ang[coord] = l - 1
	shifted.L, shifted.M, shifted.N = ang[0], ang[1], ang[2]
	minus := kineticGTO(shifted, g2)
	return 2.0*g1.Alpha*plus - float64(l)*minus
}
