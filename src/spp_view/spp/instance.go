// Package spp loads set partitioning instances from their line-oriented text format.
package spp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Instance is a loaded set partitioning instance. It has no mutation API:
// every accessor returns a copy.
//
// The header's first field sizes both the cost vector and the incidence
// rows, exactly as the instance files are laid out.
type Instance struct {
	numConstraints int
	numVariables   int
	costs          []int
	sets           [][]int
	incidence      *BinaryMatrix
	source         string
}

func newInstance(source string, m, n int, costs []int, sets [][]int) *Instance {
	inst := &Instance{
		numConstraints: m,
		numVariables:   n,
		costs:          costs,
		sets:           sets,
		incidence:      NewBinaryMatrix(m, n),
		source:         source,
	}
	for i, set := range sets {
		for _, v := range set {
			inst.incidence.Set(i, v-1)
		}
	}
	return inst
}

func (inst *Instance) ConstraintCount() int { return inst.numConstraints }
func (inst *Instance) VariableCount() int   { return inst.numVariables }
func (inst *Instance) Source() string       { return inst.source }

func (inst *Instance) Costs() []int {
	costs := make([]int, len(inst.costs))
	copy(costs, inst.costs)
	return costs
}

// Sets returns the element lists of every row, 1-indexed and in file order.
func (inst *Instance) Sets() [][]int {
	sets := make([][]int, len(inst.sets))
	for i, set := range inst.sets {
		sets[i] = make([]int, len(set))
		copy(sets[i], set)
	}
	return sets
}

func (inst *Instance) Incidence() *BinaryMatrix {
	return inst.incidence.Clone()
}

// CostVector returns the costs as a gonum vector, nil for an instance
// without rows.
func (inst *Instance) CostVector() *mat.VecDense {
	if len(inst.costs) == 0 {
		return nil
	}
	v := mat.NewVecDense(len(inst.costs), nil)
	for i, c := range inst.costs {
		v.SetVec(i, float64(c))
	}
	return v
}

func (inst *Instance) IncidenceDense() *mat.Dense {
	return inst.incidence.Dense()
}

func (inst *Instance) String() string {
	return Describe(inst)
}

func Describe(inst *Instance) string {
	return fmt.Sprintf("%d constraints, %d variables", inst.numConstraints, inst.numVariables)
}
