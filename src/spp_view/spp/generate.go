package spp

import (
	"math"
	"math/rand"
	"slices"

	"github.com/pkg/errors"
)

const DefaultMaxCost = 20

type GenParams struct {
	Rows          int
	Variables     int
	MeanDensity   float64
	StdDevDensity float64
	// MaxCost is the largest cost drawn; DefaultMaxCost when zero.
	MaxCost int
}

func (p GenParams) validate() error {
	switch {
	case p.Rows <= 0:
		return errors.Errorf("rows must be positive, got %d", p.Rows)
	case p.Variables <= 0:
		return errors.Errorf("variables must be positive, got %d", p.Variables)
	case p.MeanDensity <= 0 || p.MeanDensity > 1:
		return errors.Errorf("mean density must be in (0, 1], got %v", p.MeanDensity)
	case p.StdDevDensity < 0:
		return errors.Errorf("density standard deviation must not be negative, got %v", p.StdDevDensity)
	case p.MaxCost < 0:
		return errors.Errorf("max cost must not be negative, got %d", p.MaxCost)
	case p.Rows > maxCells/p.Variables:
		return errors.Errorf("dimension %d x %d exceeds %d cells", p.Rows, p.Variables, maxCells)
	}
	return nil
}

// Generate draws a random instance. Each row covers a share of the variables
// drawn from a normal distribution clamped to [0, 1], and at least one.
func Generate(rng *rand.Rand, p GenParams) (*Instance, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	maxCost := p.MaxCost
	if maxCost == 0 {
		maxCost = DefaultMaxCost
	}

	costs := make([]int, p.Rows)
	for i := range costs {
		costs[i] = 1 + rng.Intn(maxCost)
	}

	sets := make([][]int, p.Rows)
	for i := range sets {
		r := math.Max(0, math.Min(1, p.MeanDensity+p.StdDevDensity*rng.NormFloat64()))
		setSize := int(math.Max(1.0, float64(p.Variables)*r))
		perm := rng.Perm(p.Variables)
		set := make([]int, setSize)
		for j := range setSize {
			set[j] = perm[j] + 1
		}
		slices.Sort(set)
		sets[i] = set
	}

	return newInstance("generated", p.Rows, p.Variables, costs, sets), nil
}
