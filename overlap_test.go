// overlap_test.go --  This file is part of the goqint project.
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

// singleGTO builds a contracted function holding one unit-coefficient
// primitive.
func singleGTO(alpha float64, l, m, n int, r Vec3) *CGF {
	cgf := NewCGF(r)
	cgf.AddGTO(1.0, alpha, l, m, n)
	return cgf
}

func TestPrimitiveOverlapClosedForm(t *testing.T) {
	// two unnormalized 1s primitives at the origin with equal exponent:
	// <a|b> = (pi/(2 alpha))^1.5
	origin := Vec3{}
	for _, alpha := range []float64{0.5, 1.0, 3.425251} {
		want := math.Pow(math.Pi/(2*alpha), 1.5)
		got := overlap(alpha, 0, 0, 0, origin, alpha, 0, 0, 0, origin)
		assert.InDelta(t, want, got, 1e-12, "alpha=%g", alpha)
	}
}

func TestNormalizedShellSelfOverlap(t *testing.T) {
	shells := []struct {
		name    string
		l, m, n int
	}{
		{"s", 0, 0, 0},
		{"px", 1, 0, 0},
		{"py", 0, 1, 0},
		{"pz", 0, 0, 1},
		{"dxx", 2, 0, 0},
		{"dxy", 1, 1, 0},
		{"dzz", 0, 0, 2},
	}
	for _, sh := range shells {
		cgf := singleGTO(1.3, sh.l, sh.m, sh.n, Vec3{0.2, -0.1, 0.4})
		assert.InDelta(t, 1.0, Overlap(cgf, cgf), 1e-8, "shell %s", sh.name)
	}
}

func TestOverlapSymmetricInArguments(t *testing.T) {
	a := singleGTO(0.8, 1, 0, 1, Vec3{0, 0, 0})
	b := singleGTO(1.7, 0, 2, 0, Vec3{0.5, 0.3, -1.1})
	assert.InDelta(t, Overlap(a, b), Overlap(b, a), 1e-14)
}

func TestOverlapDecaysWithSeparation(t *testing.T) {
	a := singleGTO(1.0, 0, 0, 0, Vec3{})
	near := singleGTO(1.0, 0, 0, 0, Vec3{0, 0, 0.5})
	far := singleGTO(1.0, 0, 0, 0, Vec3{0, 0, 3.0})
	assert.Greater(t, Overlap(a, near), Overlap(a, far))
	assert.Greater(t, Overlap(a, far), 0.0)
}

func TestSTO3GSelfOverlapNearUnity(t *testing.T) {
	cgf := NewCGF(Vec3{})
	cgf.AddGTO(0.154329, 3.425251, 0, 0, 0)
	cgf.AddGTO(0.535328, 0.623914, 0, 0, 0)
	cgf.AddGTO(0.444635, 0.168855, 0, 0, 0)
	assert.InDelta(t, 1.0, Overlap(cgf, cgf), 1e-4)
}
