// vec.go --  This file is part of the goqint project.
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

// Vec3 is a Cartesian position or displacement in atomic units.
type Vec3 [3]float64

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{a * v[0], a * v[1], a * v[2]}
}

// Norm2 returns the squared Euclidean norm.
func (v Vec3) Norm2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// gaussianProductCenter returns the center of the Gaussian that results
// from multiplying two Gaussians with exponents alpha1, alpha2 at a, b
// (Gaussian product theorem).
func gaussianProductCenter(alpha1 float64, a Vec3, alpha2 float64, b Vec3) Vec3 {
	return a.Scale(alpha1).Add(b.Scale(alpha2)).Scale(1.0 / (alpha1 + alpha2))
}
