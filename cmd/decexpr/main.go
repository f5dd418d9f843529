package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/decexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb        string
		nl, echo, dump      bool
		fold, strict, exact bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting string")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms of infix expressions")
	flag.BoolVar(&dump, "dump", false, "dump parsed expressions")
	flag.BoolVar(&fold, "fold", false, "inputs are functional-form lists as JSON or YAML")
	flag.BoolVar(&strict, "strict", false, "reject operands that are not decimal numbers")
	flag.BoolVar(&exact, "exact", false, "compute with exact decimals")
	flag.Parse()

	var opts []decexpr.Option
	if strict {
		opts = append(opts, decexpr.Strict())
	}
	if exact {
		opts = append(opts, decexpr.Exact())
	}
	calc := decexpr.New(opts...)

	srcs, err := inputs(inname, flag.Args(), nl)
	if err != nil {
		log.Fatal(err)
	}

	verb += "\n"
	if fold {
		for _, src := range srcs {
			lists, err := decexpr.DecodeLists(strings.NewReader(src))
			if err != nil {
				log.Fatal(err)
			}
			for _, l := range lists {
				if dump {
					spew.Dump(l)
				}
				r, err := calc.Fold(l)
				if err != nil {
					fmt.Println(err)
					continue
				}
				fmt.Printf(verb, r)
			}
		}
		return
	}
	for _, src := range srcs {
		a, err := decexpr.Parse(src)
		if err != nil {
			fmt.Println(&decexpr.EvalError{Expr: src, Err: err})
			continue
		}
		if dump {
			spew.Dump(a)
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := calc.Eval(a)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// inputs collects the expression sources: the input file or stdin, then each
// argument. With nl, the file is split into lines and blank lines are
// skipped.
func inputs(inname string, args []string, nl bool) ([]string, error) {
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	var srcs []string
	if f != nil {
		srcs, err = readInput(f, nl)
		if err != nil {
			return nil, err
		}
	}
	return append(srcs, args...), nil
}

// readInput reads all of f and closes it.
func readInput(f io.ReadCloser, nl bool) ([]string, error) {
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if !nl {
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input lines")
	}
	return srcs, nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", inname)
		}
		return in, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
