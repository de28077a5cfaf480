// kinetic_test.go --  This file is part of the goqint project.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinetic1sClosedForm(t *testing.T) {
	// <1s|T|1s> = 3 alpha / 2 for a normalized s primitive
	for _, alpha := range []float64{0.5, 1.0, 2.0} {
		cgf := singleGTO(alpha, 0, 0, 0, Vec3{})
		assert.InDelta(t, 1.5*alpha, Kinetic(cgf, cgf), 1e-10, "alpha=%g", alpha)
	}
}

func TestKineticSymmetricInArguments(t *testing.T) {
	a := singleGTO(0.9, 1, 0, 0, Vec3{0, 0, 0})
	b := singleGTO(1.4, 0, 0, 2, Vec3{0.3, -0.2, 0.9})
	assert.InDelta(t, Kinetic(a, b), Kinetic(b, a), 1e-12)
}

func TestKineticPositiveDiagonal(t *testing.T) {
	for _, sh := range [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}} {
		cgf := singleGTO(0.75, sh[0], sh[1], sh[2], Vec3{1, 2, 3})
		assert.Greater(t, Kinetic(cgf, cgf), 0.0, "shell %v", sh)
	}
}
