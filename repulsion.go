// repulsion.go --  This file is part of the goqint project.
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

// Repulsion computes the two-electron repulsion integral
// (cgf1 cgf2|cgf3 cgf4) in chemists' notation.
func Repulsion(cgf1, cgf2, cgf3, cgf4 *CGF) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			for _, g3 := range cgf3.GTOs {
				for _, g4 := range cgf4.GTOs {
					sum += g1.Norm * g2.Norm * g3.Norm * g4.Norm *
						g1.Coeff * g2.Coeff * g3.Coeff * g4.Coeff *
						repulsionGTO(g1, g2, g3, g4)
				}
			}
		}
	}
	return sum
}

// RepulsionDeriv computes the derivative of (cgf1 cgf2|cgf3 cgf4) with
// respect to coordinate coord of the given nucleus. Each contraction
// centered on that nucleus contributes one recurrence term; when all four
// or none of the centers coincide with it the derivative vanishes.
func RepulsionDeriv(cgf1, cgf2, cgf3, cgf4 *CGF, nucleus Vec3, coord int) float64 {
	n1 := cgf1.atNucleus(nucleus)
	n2 := cgf2.atNucleus(nucleus)
	n3 := cgf3.atNucleus(nucleus)
	n4 := cgf4.atNucleus(nucleus)
	if n1 == n2 && n2 == n3 && n3 == n4 {
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			for _, g3 := range cgf3.GTOs {
				for _, g4 := range cgf4.GTOs {
					var t1, t2, t3, t4 float64
					if n1 {
						t1 = repulsionDerivGTO(g1, g2, g3, g4, coord)
					}
					if n2 {
						t2 = repulsionDerivGTO(g2, g1, g3, g4, coord)
					}
					if n3 {
						t3 = repulsionDerivGTO(g3, g4, g1, g2, coord)
					}
					if n4 {
						t4 = repulsionDerivGTO(g4, g3, g1, g2, coord)
					}
					sum += g1.Norm * g2.Norm * g3.Norm * g4.Norm *
						g1.Coeff * g2.Coeff * g3.Coeff * g4.Coeff *
						(t1 + t2 + t3 + t4)
				}
			}
		}
	}
	return sum
}

func repulsionGTO(g1, g2, g3, g4 GTO) float64 {
	return repulsion(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha,
		g3.R, g3.L, g3.M, g3.N, g3.Alpha,
		g4.R, g4.L, g4.M, g4.N, g4.Alpha)
}

// repulsionDerivGTO differentiates the primitive repulsion integral
// towards the center coordinate of g1.
func repulsionDerivGTO(g1, g2, g3, g4 GTO, coord int) float64 {
	ang := [3]int{g1.L, g1.M, g1.N}
	l := ang[coord]

	ang[coord] = l + 1
	shifted := g1
	shifted.L, shifted.M, shifted.N = ang[0], ang[1], ang[2]
	plus := repulsionGTO(shifted, g2, g3, g4)
	if l == 0 {
		return 2.0 * g1.Alpha * plus
	}

	ang[coord] = l - 1
	shifted.L, shifted.M, shifted.N = ang[0], ang[1], ang[2]
	minus := repulsionGTO(shifted, g2, g3, g4)
	return 2.0*g1.Alpha*plus - float64(l)*minus
}

// repulsion evaluates the primitive two-electron integral over the two
// Gaussian product centers of the (1,2) and (3,4) pairs, contracting the
// per-axis B-arrays against the Boys function of the reduced separation
// between the product centers.
func repulsion(a Vec3, la, ma, na int, alphaa float64,
	b Vec3, lb, mb, nb int, alphab float64,
	c Vec3, lc, mc, nc int, alphac float64,
	d Vec3, ld, md, nd int, alphad float64) float64 {

	rab2 := a.Sub(b).Norm2()
	rcd2 := c.Sub(d).Norm2()

	p := gaussianProductCenter(alphaa, a, alphab, b)
	q := gaussianProductCenter(alphac, c, alphad, d)
	rpq2 := p.Sub(q).Norm2()

	gamma1 := alphaa + alphab
	gamma2 := alphac + alphad
	delta := 0.25 * (1.0/gamma1 + 1.0/gamma2)

	bx := bArray(la, lb, lc, ld, p[0], a[0], b[0], q[0], c[0], d[0], gamma1, gamma2, delta)
	by := bArray(ma, mb, mc, md, p[1], a[1], b[1], q[1], c[1], d[1], gamma1, gamma2, delta)
	bz := bArray(na, nb, nc, nd, p[2], a[2], b[2], q[2], c[2], d[2], gamma1, gamma2, delta)

	sum := 0.0
	for i := 0; i <= la+lb+lc+ld; i++ {
		for j := 0; j <= ma+mb+mc+md; j++ {
			for k := 0; k <= na+nb+nc+nd; k++ {
				sum += bx[i] * by[j] * bz[k] * boys(i+j+k, 0.25*rpq2/delta)
			}
		}
	}

	return 2.0 * math.Pow(math.Pi, 2.5) /
		(gamma1 * gamma2 * math.Sqrt(gamma1+gamma2)) *
		math.Exp(-alphaa*alphab*rab2/gamma1) *
		math.Exp(-alphac*alphad*rcd2/gamma2) * sum
}

// bArray builds one Cartesian coefficient array of the repulsion
// integral from a five-level nested summation: two momentum ranges, two
// half-range reductions and one coupling index.
func bArray(l1, l2, l3, l4 int,
	p, a, b, q, c, d, g1, g2, delta float64) []float64 {

	imax := l1 + l2 + l3 + l4 + 1
	arr := make([]float64, imax)

	for i1 := 0; i1 <= l1+l2; i1++ {
		for i2 := 0; i2 <= l3+l4; i2++ {
			for r1 := 0; r1 <= i1/2; r1++ {
				for r2 := 0; r2 <= i2/2; r2++ {
					for u := 0; u <= (i1+i2)/2-r1-r2; u++ {
						i := i1 + i2 - 2*(r1+r2) - u
						arr[i] += bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4,
							p, a, b, q, c, d, g1, g2, delta)
					}
				}
			}
		}
	}
	return arr
}

func bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4 int,
	px, ax, bx, qx, cx, dx, gamma1, gamma2, delta float64) float64 {

	return fB(i1, l1, l2, px, ax, bx, r1, gamma1) *
		negOnePow(i2) * fB(i2, l3, l4, qx, cx, dx, r2, gamma2) *
		negOnePow(u) * factRatio2(i1+i2-2*(r1+r2), u) *
		math.Pow(qx-px, float64(i1+i2-2*(r1+r2)-2*u)) /
		math.Pow(delta, float64(i1+i2-2*(r1+r2)-u))
}

func fB(i, l1, l2 int, p, a, b float64, r int, g float64) float64 {
	return binomialPrefactor(i, l1, l2, p-a, p-b) * b0(i, r, g)
}

func b0(i, r int, g float64) float64 {
	return factRatio2(i, r) * math.Pow(4*g, float64(r-i))
}
