package warehouse

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gowarehouse/environment"
	"gonum.org/v1/gonum/mat"
)

// UniformGoal samples target positions uniformly from
// [1, rows-1] x [1, cols-1]. The target is never placed in row 0 or
// column 0, so it can never collide with the robot's fixed starting
// cell at the origin. This is a placement policy of the warehouse
// task, not an accident of the grid geometry.
//
// UniformGoal owns its random source. Seeding it affects target
// placement only.
type UniformGoal struct {
	rows, cols int
	rng        *rand.Rand
}

// NewUniformGoal returns a new UniformGoal for a grid with r rows and
// c columns, drawing positions from a source seeded with seed. The
// same seed always yields the same sequence of target positions.
func NewUniformGoal(r, c int, seed uint64) (environment.Starter, error) {
	if r < 2 || c < 2 {
		return nil, fmt.Errorf("newUniformGoal: grid must be at least "+
			"2x2 to place a target, got %dx%d", r, c)
	}

	source := rand.NewSource(seed)
	return &UniformGoal{r, c, rand.New(source)}, nil
}

// Start draws and returns a target position as a (row, col) vector
func (u *UniformGoal) Start() *mat.VecDense {
	row := 1 + u.rng.Intn(u.rows-1)
	col := 1 + u.rng.Intn(u.cols-1)

	return mat.NewVecDense(2, []float64{float64(row), float64(col)})
}

// Seed reseeds the Starter's random source so that the sequence of
// drawn target positions is reproducible from this point on
func (u *UniformGoal) Seed(seed uint64) {
	u.rng = rand.New(rand.NewSource(seed))
}
