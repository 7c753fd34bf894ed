package spp_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spp_viewer/src/spp_view/spp"
)

const example = `2 3
5 7
2
1 2
1
3
`

func TestParseExample(t *testing.T) {
	inst, err := spp.Parse(strings.NewReader(example), "example.dat")
	require.NoError(t, err)

	require.Equal(t, 2, inst.ConstraintCount())
	require.Equal(t, 3, inst.VariableCount())
	require.Equal(t, []int{5, 7}, inst.Costs())
	require.Equal(t, [][]int{{1, 2}, {3}}, inst.Sets())
	require.Equal(t, "example.dat", inst.Source())

	m := inst.Incidence()
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []uint8{1, 1, 0}, m.Row(0))
	require.Equal(t, []uint8{0, 0, 1}, m.Row(1))

	require.Equal(t, "2 constraints, 3 variables", spp.Describe(inst))
	require.Equal(t, "2 constraints, 3 variables", inst.String())
}

func TestParseIgnoresBlankLines(t *testing.T) {
	input := "\n  \n2 3\n\n5 7\n\t\n2\n\n1 2\n1\n   \n3\n\n"
	inst, err := spp.Parse(strings.NewReader(input), "blank.dat")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3}}, inst.Sets())
}

func TestParseZeroElementRow(t *testing.T) {
	input := "3 4\n1 2 3\n0\n2\n2 4\n0\n"
	inst, err := spp.Parse(strings.NewReader(input), "zero.dat")
	require.NoError(t, err)

	require.Equal(t, [][]int{{}, {2, 4}, {}}, inst.Sets())
	m := inst.Incidence()
	require.Equal(t, []uint8{0, 0, 0, 0}, m.Row(0))
	require.Equal(t, []uint8{0, 1, 0, 1}, m.Row(1))
	require.Equal(t, []uint8{0, 0, 0, 0}, m.Row(2))
}

func TestParseIncidenceMatchesSets(t *testing.T) {
	input := "4 6\n3 1 4 1\n3\n1 3 5\n2\n6 2\n1\n4\n6\n1 2 3 4 5 6\n"
	inst, err := spp.Parse(strings.NewReader(input), "inc.dat")
	require.NoError(t, err)

	m := inst.Incidence()
	for i, set := range inst.Sets() {
		declared := map[int]bool{}
		for _, v := range set {
			declared[v-1] = true
		}
		for j := range inst.VariableCount() {
			want := uint8(0)
			if declared[j] {
				want = 1
			}
			require.Equal(t, want, m.At(i, j), "entry (%d, %d)", i, j)
		}
	}
}

func TestParseIgnoresTrailingLines(t *testing.T) {
	inst, err := spp.Parse(strings.NewReader(example+"whatever follows\n"), "tail.dat")
	require.NoError(t, err)
	require.Equal(t, 2, inst.ConstraintCount())
}

func TestParseEmptyInstance(t *testing.T) {
	inst, err := spp.Parse(strings.NewReader("0 5\n"), "empty.dat")
	require.NoError(t, err)
	require.Equal(t, 0, inst.ConstraintCount())
	require.Equal(t, 5, inst.VariableCount())
	require.Empty(t, inst.Costs())
	require.Nil(t, inst.CostVector())
	require.Nil(t, inst.IncidenceDense())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		line  int
	}{
		{"empty input", "", spp.ErrMalformedHeader, 0},
		{"header one field", "3\n", spp.ErrMalformedHeader, 1},
		{"header three fields", "3 4 5\n", spp.ErrMalformedHeader, 1},
		{"header negative", "-1 4\n", spp.ErrMalformedHeader, 1},
		{"header too large", "100000 100000\n", spp.ErrMalformedHeader, 1},
		{"header non integer", "2 x\n", spp.ErrNonIntegerToken, 1},
		{"missing costs", "2 3\n", spp.ErrTruncatedInput, 1},
		{"missing costs after blank lines", "2 3\n\n\n", spp.ErrTruncatedInput, 3},
		{"short costs", "2 3\n5\n", spp.ErrMalformedVector, 2},
		{"long costs", "2 3\n5 7 9\n", spp.ErrMalformedVector, 2},
		{"non integer cost", "2 3\n5 seven\n", spp.ErrNonIntegerToken, 2},
		{"missing row", "3 3\n1 2 3\n1\n1\n1\n2\n", spp.ErrTruncatedInput, 6},
		{"missing element line", "2 3\n5 7\n2\n1 2\n1\n", spp.ErrTruncatedInput, 5},
		{"count line with elements", "1 3\n5\n2 1 2\n", spp.ErrMalformedVector, 3},
		{"negative count", "1 3\n5\n-1\n", spp.ErrNonIntegerToken, 3},
		{"non integer count", "1 3\n5\nx\n", spp.ErrNonIntegerToken, 3},
		{"huge element count", "1 3\n5\n9223372036854775807\n1 2\n", spp.ErrMalformedVector, 4},
		{"too few elements", "1 3\n5\n2\n1\n", spp.ErrMalformedVector, 4},
		{"non integer element", "1 3\n5\n2\n1 b\n", spp.ErrNonIntegerToken, 4},
		{"element above range", "2 4\n1 1\n1\n5\n1\n1\n", spp.ErrElementOutOfRange, 4},
		{"element zero", "1 4\n1\n1\n0\n", spp.ErrElementOutOfRange, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst, err := spp.Parse(strings.NewReader(tc.input), "bad.dat")
			require.Error(t, err)
			require.Nil(t, inst)
			require.ErrorIs(t, err, tc.kind)

			var perr *spp.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, "bad.dat", perr.Source)
			require.Equal(t, tc.line, perr.Line)
			require.Contains(t, err.Error(), "bad.dat")
		})
	}
}

func TestParseErrorLineCountsBlankLines(t *testing.T) {
	_, err := spp.Parse(strings.NewReader("1 2\n\n\n4\n1\n\n3\n"), "gap.dat")
	var perr *spp.ParseError
	require.True(t, errors.As(err, &perr))
	require.ErrorIs(t, err, spp.ErrElementOutOfRange)
	require.Equal(t, 7, perr.Line)
	require.Equal(t, "gap.dat:7: element out of range: row 1: element 3 outside [1, 2]", err.Error())
}

func TestAccessorsReturnCopies(t *testing.T) {
	inst, err := spp.Parse(strings.NewReader(example), "example.dat")
	require.NoError(t, err)

	inst.Costs()[0] = 100
	inst.Sets()[0][0] = 3
	inst.Incidence().Set(1, 0)

	require.Equal(t, []int{5, 7}, inst.Costs())
	require.Equal(t, [][]int{{1, 2}, {3}}, inst.Sets())
	require.Equal(t, uint8(0), inst.Incidence().At(1, 0))
}

func TestGonumViews(t *testing.T) {
	inst, err := spp.Parse(strings.NewReader(example), "example.dat")
	require.NoError(t, err)

	c := inst.CostVector()
	require.Equal(t, 2, c.Len())
	require.Equal(t, 5.0, c.AtVec(0))
	require.Equal(t, 7.0, c.AtVec(1))

	a := inst.IncidenceDense()
	r, cols := a.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, cols)
	require.Equal(t, []float64{1, 1, 0}, a.RawRowView(0))
	require.Equal(t, []float64{0, 0, 1}, a.RawRowView(1))
}

func TestParseHeaderDoesNotReserveMemory(t *testing.T) {
	for _, input := range []string{
		"268435456 0\n1\n",
		"268435456 0\n",
		"2684 100000\n1 2\n",
	} {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)
		inst, err := spp.Parse(strings.NewReader(input), "big.dat")
		runtime.ReadMemStats(&after)

		require.Error(t, err, "input %q", input)
		require.Nil(t, inst)
		require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "input %q", input)
	}
}
