// gto.go --  This file is part of the goqint project.
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
	"errors"
	"fmt"
	"math"
)

var (
	ErrMismatchedNuclei = errors.New("goqint: nuclear charge and position arrays differ in length")
	ErrBadExponent      = errors.New("goqint: primitive Gaussian exponent must be positive")
	ErrBadMomentum      = errors.New("goqint: angular momentum powers must be non-negative")
)

// coincidenceTol2 is the squared-distance tolerance under which a center
// is considered to sit on the differentiation nucleus.
const coincidenceTol2 = 1e-4

// GTO is a primitive Cartesian Gaussian-type orbital
//
//	x^l y^m z^n exp(-alpha r^2)
//
// centered at R, scaled by a contraction coefficient. Norm is the
// normalization constant derived from alpha and (l,m,n). GTOs are value
// types and immutable once built.
type GTO struct {
	Coeff   float64
	Alpha   float64
	L, M, N int
	R       Vec3
	Norm    float64
}

// NewGTO builds a primitive Gaussian and precomputes its normalization
// constant.
func NewGTO(coeff, alpha float64, l, m, n int, r Vec3) GTO {
	g := GTO{Coeff: coeff, Alpha: alpha, L: l, M: m, N: n, R: r}
	g.Norm = gtoNorm(alpha, l, m, n)
	return g
}

// gtoNorm returns the normalization constant of a primitive Cartesian
// Gaussian with exponent alpha and powers (l,m,n).
func gtoNorm(alpha float64, l, m, n int) float64 {
	lmn := l + m + n
	num := math.Pow(2.0, float64(2*lmn)+1.5) * math.Pow(alpha, float64(lmn)+1.5)
	den := doubleFactorial(2*l-1) * doubleFactorial(2*m-1) * doubleFactorial(2*n-1) *
		math.Pow(math.Pi, 1.5)
	return math.Sqrt(num / den)
}

// CGF is a contracted Gaussian function: a fixed linear combination of
// primitives sharing one center, forming a single basis function.
type CGF struct {
	R    Vec3
	GTOs []GTO
}

// NewCGF returns an empty contracted function centered at r.
func NewCGF(r Vec3) *CGF {
	return &CGF{R: r}
}

// AddGTO appends a primitive with the given contraction coefficient,
// exponent and angular momentum powers at the contraction center.
func (c *CGF) AddGTO(coeff, alpha float64, l, m, n int) {
	c.GTOs = append(c.GTOs, NewGTO(coeff, alpha, l, m, n, c.R))
}

// Size returns the number of primitives in the contraction.
func (c *CGF) Size() int {
	return len(c.GTOs)
}

// atNucleus reports whether the contraction center coincides with the
// given nucleus position.
func (c *CGF) atNucleus(nucleus Vec3) bool {
	return c.R.Sub(nucleus).Norm2() < coincidenceTol2
}

// validateCGFs rejects malformed basis input before any computation; the
// integral loops assume pre-validated data.
func validateCGFs(cgfs []*CGF) error {
	for i, c := range cgfs {
		for k, g := range c.GTOs {
			if g.Alpha <= 0 {
				return fmt.Errorf("%w: cgf %d primitive %d has alpha %g",
					ErrBadExponent, i, k, g.Alpha)
			}
			if g.L < 0 || g.M < 0 || g.N < 0 {
				return fmt.Errorf("%w: cgf %d primitive %d has (l,m,n)=(%d,%d,%d)",
					ErrBadMomentum, i, k, g.L, g.M, g.N)
			}
		}
	}
	return nil
}
