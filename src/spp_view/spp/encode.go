package spp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Encode writes inst in the line format accepted by Parse. Rows without
// elements get no element line.
func Encode(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", inst.numConstraints, inst.numVariables)
	writeInts(bw, inst.costs)
	for _, set := range inst.sets {
		fmt.Fprintf(bw, "%d\n", len(set))
		if len(set) > 0 {
			writeInts(bw, set)
		}
	}
	return bw.Flush()
}

func writeInts(bw *bufio.Writer, values []int) {
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')
}
