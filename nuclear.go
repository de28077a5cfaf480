// nuclear.go --  This file is part of the goqint project.
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

// Nuclear computes the nuclear attraction integral <cgf1|Z/r_C|cgf2> for
// a point charge Z at position nucleus. The sign convention is that of
// the attractive potential: the returned value is negative for a positive
// charge.
func Nuclear(cgf1, cgf2 *CGF, nucleus Vec3, charge int) float64 {
	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff *
				nuclear(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
					g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus)
		}
	}
	return sum * float64(charge)
}

// NuclearDeriv computes the derivative of the nuclear attraction integral
// with respect to coordinate coord of the nucleus at nucderiv. It splits
// into basis-center contributions, for whichever contraction sits on the
// differentiation nucleus, and an operator contribution when the point
// charge itself is the differentiation nucleus. When all or none of the
// three centers coincide with it the derivative is identically zero.
func NuclearDeriv(cgf1, cgf2 *CGF, nucleus Vec3, charge int, nucderiv Vec3, coord int) float64 {
	n1 := cgf1.atNucleus(nucderiv)
	n2 := cgf2.atNucleus(nucderiv)
	n3 := nucleus.Sub(nucderiv).Norm2() < coincidenceTol2
	if n1 == n2 && n2 == n3 {
		return 0.0
	}

	sum := 0.0
	for _, g1 := range cgf1.GTOs {
		for _, g2 := range cgf2.GTOs {
			var t1, t2, t3 float64
			if n1 {
				t1 = nuclearDerivBF(g1, g2, nucleus, coord)
			}
			if n2 {
				t2 = nuclearDerivBF(g2, g1, nucleus, coord)
			}
			if n3 {
				t3 = nuclearDerivOp(g1.R, g1.L, g1.M, g1.N, g1.Alpha,
					g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus, coord)
			}
			sum += g1.Norm * g2.Norm * g1.Coeff * g2.Coeff * (t1 + t2 + t3)
		}
	}
	return sum * float64(charge)
}

// nuclearDerivBF differentiates the primitive nuclear integral towards
// the center coordinate of g1.
func nuclearDerivBF(g1, g2 GTO, nucleus Vec3, coord int) float64 {
	ang := [3]int{g1.L, g1.M, g1.N}
	l := ang[coord]

	ang[coord] = l + 1
	plus := nuclear(g1.R, ang[0], ang[1], ang[2], g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus)
	if l == 0 {
		return 2.0 * g1.Alpha * plus
	}

	ang[coord] = l - 1
	minus := nuclear(g1.R, ang[0], ang[1], ang[2], g1.Alpha,
		g2.R, g2.L, g2.M, g2.N, g2.Alpha, nucleus)
	return 2.0*g1.Alpha*plus - float64(l)*minus
}

// nuclear evaluates the primitive nuclear attraction integral by
// contracting the per-axis polynomial coefficient arrays against the Boys
// function at every reachable total quantum number.
func nuclear(a Vec3, l1, m1, n1 int, alpha1 float64,
	b Vec3, l2, m2, n2 int, alpha2 float64, c Vec3) float64 {

	gamma := alpha1 + alpha2
	p := gaussianProductCenter(alpha1, a, alpha2, b)
	rab2 := a.Sub(b).Norm2()
	rcp2 := c.Sub(p).Norm2()

	ax := aArray(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma)
	ay := aArray(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma)
	az := aArray(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma)

	sum := 0.0
	for i := 0; i <= l1+l2; i++ {
		for j := 0; j <= m1+m2; j++ {
			for k := 0; k <= n1+n2; k++ {
				sum += ax[i] * ay[j] * az[k] * boys(i+j+k, rcp2*gamma)
			}
		}
	}

	return -2.0 * math.Pi / gamma * math.Exp(-alpha1*alpha2*rab2/gamma) * sum
}

// nuclearDerivOp differentiates the primitive nuclear integral towards
// coordinate coord of the point charge position c. Both the polynomial
// coefficient array of that axis and the Boys function argument depend on
// c, so the product rule yields one term in the derivative array and one
// in the next-order Boys function.
func nuclearDerivOp(a Vec3, l1, m1, n1 int, alpha1 float64,
	b Vec3, l2, m2, n2 int, alpha2 float64, c Vec3, coord int) float64 {

	gamma := alpha1 + alpha2
	p := gaussianProductCenter(alpha1, a, alpha2, b)
	rab2 := a.Sub(b).Norm2()
	rcp2 := c.Sub(p).Norm2()
	rcpcoord := c.Sub(p)[coord]

	v := [3][]float64{
		aArray(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma),
		aArray(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma),
		aArray(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma),
	}

	var ad []float64
	switch coord {
	case 0:
		ad = aArrayDeriv(l1, l2, p[0]-a[0], p[0]-b[0], p[0]-c[0], gamma)
	case 1:
		ad = aArrayDeriv(m1, m2, p[1]-a[1], p[1]-b[1], p[1]-c[1], gamma)
	case 2:
		ad = aArrayDeriv(n1, n2, p[2]-a[2], p[2]-b[2], p[2]-c[2], gamma)
	}

	// iterate with the differentiation axis first so one loop nest covers
	// all three coordinate cases
	itmax := [3]int{l1 + l2, m1 + m2, n1 + n2}
	v0 := coord
	v1 := (coord + 1) % 3
	v2 := (coord + 2) % 3

	sum := 0.0
	for i := 0; i <= itmax[v0]; i++ {
		for j := 0; j <= itmax[v1]; j++ {
			for k := 0; k <= itmax[v2]; k++ {
				sum += (v[v0][i]*-2.0*gamma*rcpcoord*boys(i+j+k+1, rcp2*gamma) +
					ad[i]*boys(i+j+k, rcp2*gamma)) * v[v1][j] * v[v2][k]
			}
		}
	}

	return -2.0 * math.Pi / gamma * math.Exp(-alpha1*alpha2*rab2/gamma) * sum
}

// aArray builds the polynomial coefficient array of one axis of the
// nuclear attraction integral from the combined angular momentum and the
// product-center/point-charge offsets.
func aArray(l1, l2 int, pa, pb, cp, g float64) []float64 {
	imax := l1 + l2 + 1
	arr := make([]float64, imax)

	for i := 0; i < imax; i++ {
		for r := 0; r <= i/2; r++ {
			for u := 0; u <= (i-2*r)/2; u++ {
				iI := i - 2*r - u
				arr[iI] += aTerm(i, r, u, l1, l2, pa, pb, cp, g)
			}
		}
	}
	return arr
}

// aArrayDeriv builds the derivative of aArray towards the point charge
// coordinate: each term carries a factor -pow/cp from differentiating
// cp^pow.
func aArrayDeriv(l1, l2 int, pa, pb, cp, g float64) []float64 {
	imax := l1 + l2 + 1
	arr := make([]float64, imax)

	for i := 0; i < imax; i++ {
		for r := 0; r <= i/2; r++ {
			for u := 0; u <= (i-2*r)/2; u++ {
				iI := i - 2*r - u
				cppow := i - 2*r - 2*u
				if cppow != 0 && cp != 0.0 {
					arr[iI] += aTerm(i, r, u, l1, l2, pa, pb, cp, g) *
						-float64(cppow) / cp
				}
			}
		}
	}
	return arr
}

func aTerm(i, r, u, l1, l2 int, pax, pbx, cpx, gamma float64) float64 {
	return negOnePow(i) * binomialPrefactor(i, l1, l2, pax, pbx) *
		negOnePow(u) * fact[i] * math.Pow(cpx, float64(i-2*r-2*u)) *
		math.Pow(0.25/gamma, float64(r+u)) / fact[r] / fact[u] / fact[i-2*r-2*u]
}
