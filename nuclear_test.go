// nuclear_test.go --  This file is part of the goqint project.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNuclear1sClosedForm(t *testing.T) {
	// <1s|1/r|1s> = -2 sqrt(2 alpha / pi) for a normalized s primitive
	// with the charge on the same center
	origin := Vec3{}
	for _, alpha := range []float64{0.5, 1.0, 2.0} {
		cgf := singleGTO(alpha, 0, 0, 0, origin)
		want := -2.0 * math.Sqrt(2.0*alpha/math.Pi)
		assert.InDelta(t, want, Nuclear(cgf, cgf, origin, 1), 1e-6, "alpha=%g", alpha)
	}
}

func TestNuclearScalesWithCharge(t *testing.T) {
	cgf := singleGTO(1.0, 0, 0, 0, Vec3{})
	nucleus := Vec3{0, 0, 0.7}
	v1 := Nuclear(cgf, cgf, nucleus, 1)
	v6 := Nuclear(cgf, cgf, nucleus, 6)
	assert.InDelta(t, 6.0*v1, v6, 1e-10)
}

func TestNuclearAttractive(t *testing.T) {
	cgf := singleGTO(0.8, 0, 0, 1, Vec3{})
	assert.Less(t, Nuclear(cgf, cgf, Vec3{0, 0, 0.5}, 2), 0.0)
}

func TestNuclearSymmetricInBasisArguments(t *testing.T) {
	a := singleGTO(1.1, 1, 0, 0, Vec3{0, 0, 0})
	b := singleGTO(0.6, 0, 1, 1, Vec3{0.4, 0.1, -0.8})
	nucleus := Vec3{0.2, -0.3, 0.5}
	assert.InDelta(t, Nuclear(a, b, nucleus, 3), Nuclear(b, a, nucleus, 3), 1e-10)
}
