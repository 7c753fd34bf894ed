package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"spp_viewer/src/spp_view/spp"
)

func writeInstance(path string, inst *spp.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := spp.Encode(f, inst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(args []string, stdout, stderr io.Writer) int {
	var outPath string
	var params spp.GenParams
	var seed int64

	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&outPath, "out", "out.dat", "The output file")
	fs.IntVar(&params.Rows, "rows", 0, "The number of rows (constraints)")
	fs.IntVar(&params.Variables, "vars", 0, "The number of variables")
	fs.Float64Var(&params.MeanDensity, "meand", 0, "The row density mean")
	fs.Float64Var(&params.StdDevDensity, "stddevd", 0, "The row density standard deviation")
	fs.IntVar(&params.MaxCost, "maxcost", spp.DefaultMaxCost, "The largest cost drawn")
	fs.Int64Var(&seed, "seed", 0, "The random seed, current time when 0")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	inst, err := spp.Generate(rand.New(rand.NewSource(seed)), params)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid parameters: %v\n", err)
		return 1
	}

	if err := writeInstance(outPath, inst); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote %v to %v (seed %d)\n", spp.Describe(inst), outPath, seed)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
