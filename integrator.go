// integrator.go --  This file is part of the goqint project.
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
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Integrator evaluates the full set of one- and two-electron integrals
// for a basis. It holds no mutable state across calls; Workers only sets
// the goroutine pool size of the two parallel assembly phases.
type Integrator struct {
	Workers int
}

// NewIntegrator returns an Integrator with one worker per available CPU.
func NewIntegrator() *Integrator {
	return &Integrator{Workers: runtime.GOMAXPROCS(0)}
}

// BuildInfo is informational runtime configuration, kept outside the
// numerical core.
type BuildInfo struct {
	GoVersion string
	NumCPU    int
	Workers   int
}

// BuildInfo reports the runtime the integrator executes under.
func (it *Integrator) BuildInfo() BuildInfo {
	return BuildInfo{
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Workers:   it.workers(),
	}
}

func (it *Integrator) workers() int {
	if it.Workers > 0 {
		return it.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Results holds the assembled integral data for N basis functions: the
// symmetric one-electron matrices, the per-charge nuclear attraction
// slices, their combined sum and the canonically indexed two-electron
// buffer.
type Results struct {
	N    int
	S    *mat.SymDense
	T    *mat.SymDense
	V    *mat.SymDense
	VNuc []*mat.SymDense
	TE   []float64
}

// Flatten concatenates the results into the single linear layout consumed
// by the host binding: S, T and V row-major (N*N each) followed by the
// two-electron buffer. The binding reshapes the tail using TEIndex.
func (r *Results) Flatten() []float64 {
	out := make([]float64, 0, 3*r.N*r.N+len(r.TE))
	for _, m := range []*mat.SymDense{r.S, r.T, r.V} {
		for i := 0; i < r.N; i++ {
			for j := 0; j < r.N; j++ {
				out = append(out, m.At(i, j))
			}
		}
	}
	return append(out, r.TE...)
}

// pairJob is one phase-one work unit: the owning worker writes S(i,j),
// T(i,j) and every per-charge V_k(i,j), so each matrix cell has exactly
// one writer.
type pairJob struct {
	i, j int
}

// teJob is one phase-two work unit. idx is the canonical slot the job
// owns; no two jobs share a slot.
type teJob struct {
	idx        int
	i, j, k, l int
}

// Evaluate computes all overlap, kinetic, nuclear attraction and
// two-electron repulsion integrals for the basis. charges and positions
// are parallel arrays describing the nuclei. The basis and nucleus data
// are read-only for the duration of the call.
func (it *Integrator) Evaluate(cgfs []*CGF, charges []int, positions []Vec3) (*Results, error) {
	if len(charges) != len(positions) {
		return nil, fmt.Errorf("%w: %d charges, %d positions",
			ErrMismatchedNuclei, len(charges), len(positions))
	}
	if err := validateCGFs(cgfs); err != nil {
		return nil, err
	}

	n := len(cgfs)
	res := &Results{
		N:    n,
		S:    mat.NewSymDense(max(n, 1), nil),
		T:    mat.NewSymDense(max(n, 1), nil),
		V:    mat.NewSymDense(max(n, 1), nil),
		VNuc: make([]*mat.SymDense, len(charges)),
	}
	for k := range charges {
		res.VNuc[k] = mat.NewSymDense(max(n, 1), nil)
	}

	it.oneElectronPass(cgfs, charges, positions, res)

	// combine the per-charge attraction slices
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := range res.VNuc {
				sum += res.VNuc[k].At(i, j)
			}
			res.V.SetSym(i, j, sum)
		}
	}

	res.TE = it.twoElectronPass(cgfs)
	return res, nil
}

// oneElectronPass fills the upper triangles of S, T and the per-charge V
// slices in one parallel sweep over (i,j) pairs. Per-pair cost varies
// with angular momentum and contraction length, so workers pull pairs
// from a shared channel rather than being assigned static ranges.
func (it *Integrator) oneElectronPass(cgfs []*CGF, charges []int, positions []Vec3, res *Results) {
	n := len(cgfs)
	jobs := make(chan pairJob, it.workers())

	var wg sync.WaitGroup
	for w := 0; w < it.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				i, j := job.i, job.j
				res.S.SetSym(i, j, Overlap(cgfs[i], cgfs[j]))
				res.T.SetSym(i, j, Kinetic(cgfs[i], cgfs[j]))
				for k := range charges {
					res.VNuc[k].SetSym(i, j,
						Nuclear(cgfs[i], cgfs[j], positions[k], charges[k]))
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			jobs <- pairJob{i, j}
		}
	}
	close(jobs)
	wg.Wait()
}

// twoElectronPass builds the deduplicated job list sequentially, then
// evaluates the jobs in parallel. A quadruple is admitted only when its
// ij pair index does not exceed its kl pair index and its canonical slot
// is still unclaimed; the slot is claimed before enqueueing, so every
// physically distinct integral is enqueued exactly once and each job owns
// its slot outright.
func (it *Integrator) twoElectronPass(cgfs []*CGF) []float64 {
	n := len(cgfs)
	size := TESize(n)
	te := make([]float64, size)
	jobs := buildTEJobs(n)

	queue := make(chan teJob, it.workers())
	var wg sync.WaitGroup
	for w := 0; w < it.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				te[job.idx] = Repulsion(cgfs[job.i], cgfs[job.j], cgfs[job.k], cgfs[job.l])
			}
		}()
	}
	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	return te
}

// buildTEJobs scans all index quadruples and claims each canonical slot
// exactly once. The explicit claim bitmap replaces a sign-based "unfilled"
// sentinel in the value buffer; legitimate integrals may be zero, so the
// stored value carries no presence information.
func buildTEJobs(n int) []teJob {
	size := TESize(n)
	claimed := make([]bool, size)

	var jobs []teJob
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := i*(i+1)/2 + j
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					kl := k*(k+1)/2 + l
					if ij > kl {
						continue
					}
					idx := TEIndex(i, j, k, l)
					if idx >= size {
						panic(fmt.Sprintf(
							"goqint: canonical index %d out of bounds for buffer of %d slots",
							idx, size))
					}
					if !claimed[idx] {
						claimed[idx] = true
						jobs = append(jobs, teJob{idx, i, j, k, l})
					}
				}
			}
		}
	}
	return jobs
}
