// doc.go --  This file is part of the goqint project.
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

// Package goqint evaluates analytic molecular integrals over Cartesian
// Gaussian-type orbitals: overlap, kinetic energy, nuclear attraction and
// two-electron repulsion, together with their first derivatives with
// respect to nuclear coordinates.
//
// The closed-form primitive formulas follow the Gaussian product theorem
// and the Boys function; contracted values are norm- and coefficient-
// weighted sums over primitive combinations. An Integrator assembles the
// full N x N one-electron matrices and the symmetry-packed two-electron
// buffer in two parallel phases, collapsing the 8-fold permutational
// symmetry of the repulsion integrals through a canonical index so that
// each physically distinct integral is evaluated exactly once.
//
// Basis-set construction, molecular geometry handling and the SCF solver
// are external collaborators; this package is only the integral kernel
// and its assembly.
package goqint
