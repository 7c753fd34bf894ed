package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"spp_viewer/src/spp_view/spp"
)

func newLogger(stderr io.Writer, level slog.Level, jsonOut io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(stderr, opts)}
	if jsonOut != nil {
		handlers = append(handlers, slog.NewJSONHandler(jsonOut, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func printInstance(w io.Writer, inst *spp.Instance, withMatrix bool) {
	fmt.Fprintf(w, "Instance %v: %v\n", inst.Source(), spp.Describe(inst))
	fmt.Fprintf(w, "Costs: %v\n", inst.Costs())
	if withMatrix {
		fmt.Fprint(w, inst.Incidence())
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	var dir, logLevel, logJSON string
	var list, withMatrix bool
	var ids []string

	fs := flag.NewFlagSet("spp_view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&dir, "dir", "data", "The directory holding the instance files")
	fs.BoolVar(&list, "list", false, "List the available instances")
	fs.Func("inst", "a list of instance identifiers, separated by a whitespace", func(s string) error {
		ids = strings.Fields(s)
		return nil
	})
	fs.BoolVar(&withMatrix, "matrix", false, "Print the incidence matrix of each loaded instance")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	fs.StringVar(&logJSON, "log-json", "", "Also write JSON logs to this file")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q\n", logLevel)
		return 1
	}
	var jsonOut io.Writer
	if logJSON != "" {
		f, err := os.OpenFile(logJSON, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		jsonOut = f
	}
	logger := newLogger(stderr, level, jsonOut)

	if !list && len(ids) == 0 {
		fmt.Fprintln(stderr, "Must specify -list or at least an instance")
		return 1
	}

	loader := spp.NewLoader(dir, spp.WithLogger(logger))
	status := 0

	if list {
		names, err := loader.List()
		if err != nil {
			fmt.Fprintf(stderr, "Cannot list instances: %v\n", err)
			return 1
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
	}

	for _, id := range ids {
		inst, err := loader.Load(id)
		if err != nil {
			fmt.Fprintf(stderr, "Error for instance \"%v\": %v. Skipping...\n", id, err)
			status = 1
			continue
		}
		printInstance(stdout, inst, withMatrix)
	}
	return status
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
