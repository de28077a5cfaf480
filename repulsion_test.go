// repulsion_test.go --  This file is part of the goqint project.
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

func TestRepulsion1sClosedForm(t *testing.T) {
	// (ss|ss) = 2 sqrt(alpha/pi) for four identical normalized s
	// primitives on one center
	for _, alpha := range []float64{0.5, 1.0, 2.0} {
		cgf := singleGTO(alpha, 0, 0, 0, Vec3{})
		want := 2.0 * math.Sqrt(alpha/math.Pi)
		assert.InDelta(t, want, Repulsion(cgf, cgf, cgf, cgf), 1e-6, "alpha=%g", alpha)
	}
}

func TestRepulsionEightfoldSymmetry(t *testing.T) {
	cgfs := []*CGF{
		singleGTO(1.0, 0, 0, 0, Vec3{0, 0, 0}),
		singleGTO(0.8, 1, 0, 0, Vec3{0, 0, 1.2}),
		singleGTO(1.5, 0, 1, 0, Vec3{0.5, -0.4, 0.3}),
		singleGTO(0.6, 0, 0, 1, Vec3{-0.7, 0.9, 0.1}),
	}

	ref := Repulsion(cgfs[0], cgfs[1], cgfs[2], cgfs[3])
	for _, p := range permutations8(0, 1, 2, 3) {
		got := Repulsion(cgfs[p[0]], cgfs[p[1]], cgfs[p[2]], cgfs[p[3]])
		assert.InDelta(t, ref, got, math.Abs(ref)*1e-9+1e-12, "permutation %v", p)
	}
}

func TestRepulsionPositiveForLikeDensities(t *testing.T) {
	a := singleGTO(1.0, 0, 0, 0, Vec3{})
	b := singleGTO(0.9, 0, 0, 0, Vec3{0, 0, 1.4})
	assert.Greater(t, Repulsion(a, a, b, b), 0.0)
	assert.Greater(t, Repulsion(a, b, a, b), 0.0)
}

func TestRepulsionDecaysWithSeparation(t *testing.T) {
	a := singleGTO(1.0, 0, 0, 0, Vec3{})
	near := singleGTO(1.0, 0, 0, 0, Vec3{0, 0, 1.0})
	far := singleGTO(1.0, 0, 0, 0, Vec3{0, 0, 5.0})
	assert.Greater(t, Repulsion(a, a, near, near), Repulsion(a, a, far, far))
}
