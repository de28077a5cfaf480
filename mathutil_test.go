// mathutil_test.go --  This file is part of the goqint project.
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

func TestFactorialTables(t *testing.T) {
	assert.Equal(t, 1.0, fact[0])
	assert.Equal(t, 120.0, fact[5])
	assert.Equal(t, 1.0, doubleFactorial(-1))
	assert.Equal(t, 1.0, doubleFactorial(0))
	assert.Equal(t, 15.0, doubleFactorial(5))
	assert.Equal(t, 48.0, doubleFactorial(6))
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, binomial(4, 0))
	assert.Equal(t, 6.0, binomial(4, 2))
	assert.Equal(t, 10.0, binomial(5, 3))
}

func TestBinomialPrefactor(t *testing.T) {
	// coefficients of (x+2)^2 (x+3) = x^3 + 7x^2 + 16x + 12
	assert.InDelta(t, 12.0, binomialPrefactor(0, 2, 1, 2, 3), 1e-12)
	assert.InDelta(t, 16.0, binomialPrefactor(1, 2, 1, 2, 3), 1e-12)
	assert.InDelta(t, 7.0, binomialPrefactor(2, 2, 1, 2, 3), 1e-12)
	assert.InDelta(t, 1.0, binomialPrefactor(3, 2, 1, 2, 3), 1e-12)
}

func TestFactRatio2(t *testing.T) {
	// 4!/1!/2! = 12
	assert.Equal(t, 12.0, factRatio2(4, 1))
	assert.Equal(t, 1.0, factRatio2(0, 0))
}
