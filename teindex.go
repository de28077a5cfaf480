// teindex.go --  This file is part of the goqint project.
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

// TEIndex maps a two-electron index quadruple (i,j,k,l) to its canonical
// storage slot. Repulsion integrals obey the 8-fold permutational
// symmetry
//
//	(ij|kl) = (ji|kl) = (ij|lk) = (ji|lk) = (kl|ij) = (lk|ij) = (kl|ji) = (lk|ji)
//
// so the two indices of each pair are ordered, the pairs are folded into
// triangular pair indices and the pair indices are ordered in turn; all
// eight equivalent permutations resolve to the same slot.
func TEIndex(i, j, k, l int) int {
	if i < j {
		i, j = j, i
	}
	if k < l {
		k, l = l, k
	}

	ij := i*(i+1)/2 + j
	kl := k*(k+1)/2 + l

	if ij < kl {
		ij, kl = kl, ij
	}

	return ij*(ij+1)/2 + kl
}

// TESize returns the length of the canonical two-electron buffer for n
// basis functions: with M = n(n+1)/2 distinct pairs there are M(M+1)/2
// canonical slots.
func TESize(n int) int {
	m := n * (n + 1) / 2
	return m * (m + 1) / 2
}
