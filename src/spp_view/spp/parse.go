package spp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	maxLineSize = 16 << 20
	// maxCells bounds the incidence matrix a header may declare.
	maxCells = 1 << 28
)

// lineScanner yields the whitespace-separated fields of each non-blank line
// together with its physical line number.
type lineScanner struct {
	scanner *bufio.Scanner
	source  string
	lineNo  int
}

func newLineScanner(r io.Reader, source string) *lineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &lineScanner{scanner: scanner, source: source}
}

// next returns the fields of the next non-blank line. ok is false at end of
// input; err is set only when reading fails.
func (ls *lineScanner) next() (fields []string, ok bool, err error) {
	for ls.scanner.Scan() {
		ls.lineNo++
		fields = strings.Fields(ls.scanner.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err := ls.scanner.Err(); err != nil {
		return nil, false, errors.Wrapf(err, "reading %s after line %d", ls.source, ls.lineNo)
	}
	return nil, false, nil
}

func (ls *lineScanner) fail(kind error, format string, args ...any) error {
	return &ParseError{
		Source: ls.source,
		Line:   ls.lineNo,
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (ls *lineScanner) truncated(format string, args ...any) error {
	return &ParseError{
		Source: ls.source,
		Line:   ls.lineNo,
		Kind:   ErrTruncatedInput,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (ls *lineScanner) atoi(tok string, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ls.fail(ErrNonIntegerToken, "%s: %q is not an integer", what, tok)
	}
	return v, nil
}

func (ls *lineScanner) count(tok string, what string) (int, error) {
	v, err := ls.atoi(tok, what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ls.fail(ErrNonIntegerToken, "%s: %q is not a non-negative integer", what, tok)
	}
	return v, nil
}

type parser struct {
	ls    *lineScanner
	m, n  int
	costs []int
	sets  [][]int
}

func (p *parser) parseFirstLine() error {
	fields, ok, err := p.ls.next()
	if err != nil {
		return err
	}
	if !ok {
		return &ParseError{Source: p.ls.source, Line: p.ls.lineNo, Kind: ErrMalformedHeader, Msg: "missing header line"}
	}
	if len(fields) != 2 {
		return p.ls.fail(ErrMalformedHeader, "expected 2 fields, found %d", len(fields))
	}
	if p.m, err = p.ls.atoi(fields[0], "header"); err != nil {
		return err
	}
	if p.n, err = p.ls.atoi(fields[1], "header"); err != nil {
		return err
	}
	if p.m < 0 || p.n < 0 {
		return p.ls.fail(ErrMalformedHeader, "negative dimension %d x %d", p.m, p.n)
	}
	if p.m > maxCells || (p.n > 0 && p.m > maxCells/p.n) {
		return p.ls.fail(ErrMalformedHeader, "dimension %d x %d exceeds %d cells", p.m, p.n, maxCells)
	}
	return nil
}

func (p *parser) parseSecondLine() error {
	p.costs = []int{}
	fields, ok, err := p.ls.next()
	if err != nil {
		return err
	}
	if !ok {
		if p.m == 0 {
			return nil
		}
		return p.ls.truncated("missing cost line, expected %d costs", p.m)
	}
	if len(fields) != p.m {
		return p.ls.fail(ErrMalformedVector, "expected %d costs, found %d", p.m, len(fields))
	}
	p.costs = make([]int, 0, len(fields))
	for i, tok := range fields {
		v, err := p.ls.atoi(tok, fmt.Sprintf("cost %d", i+1))
		if err != nil {
			return err
		}
		p.costs = append(p.costs, v)
	}
	return nil
}

func (p *parser) parseSets() error {
	p.sets = [][]int{}
	for i := range p.m {
		fields, ok, err := p.ls.next()
		if err != nil {
			return err
		}
		if !ok {
			return p.ls.truncated("found %d of %d rows", i, p.m)
		}
		if len(fields) != 1 {
			return p.ls.fail(ErrMalformedVector, "row %d: expected a single element count, found %d fields", i+1, len(fields))
		}
		k, err := p.ls.count(fields[0], fmt.Sprintf("row %d element count", i+1))
		if err != nil {
			return err
		}

		set := []int{}
		if k > 0 {
			fields, ok, err = p.ls.next()
			if err != nil {
				return err
			}
			if !ok {
				return p.ls.truncated("row %d: missing element line, expected %d elements", i+1, k)
			}
			if len(fields) != k {
				return p.ls.fail(ErrMalformedVector, "row %d: expected %d elements, found %d", i+1, k, len(fields))
			}
			set = make([]int, 0, len(fields))
			for _, tok := range fields {
				v, err := p.ls.atoi(tok, fmt.Sprintf("row %d element", i+1))
				if err != nil {
					return err
				}
				if v < 1 || v > p.n {
					return p.ls.fail(ErrElementOutOfRange, "row %d: element %d outside [1, %d]", i+1, v, p.n)
				}
				set = append(set, v)
			}
		}
		p.sets = append(p.sets, set)
	}
	return nil
}

// Parse reads an instance from r. Blank lines are ignored everywhere and
// anything after the last declared row is not read. source names the input
// in errors and in the returned Instance.
func Parse(r io.Reader, source string) (*Instance, error) {
	p := &parser{ls: newLineScanner(r, source)}
	for _, step := range []func() error{
		p.parseFirstLine,
		p.parseSecondLine,
		p.parseSets,
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return newInstance(source, p.m, p.n, p.costs, p.sets), nil
}
