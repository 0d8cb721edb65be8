// Package main implements the cradle interpreter entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/cmr/lets-build-a-compiler/internal/interp"
)

// Interpreter flags
var (
	expr    = flag.String("e", "", "Evaluate a single expression and print its value")
	trace   = flag.Bool("trace", false, "Trace variable updates to stderr")
	dump    = flag.Bool("dump", false, "Print the non-zero variables after the run")
	version = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cradle %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: cradle [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Reads the program from stdin when no file (or \"-\") is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("cradle version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *expr != "" {
		os.Exit(runEval(*expr))
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "error: too many input files")
		fmt.Fprintln(os.Stderr, "usage: cradle [options] [file]")
		os.Exit(2)
	}

	filename := "-"
	if len(args) == 1 {
		filename = args[0]
	}
	os.Exit(runProgram(filename))
}

// newConfig builds the interpreter configuration from the flags.
func newConfig() *interp.Config {
	conf := &interp.Config{Out: os.Stdout}
	if *trace {
		conf.Trace = os.Stderr
	}
	return conf
}

// runProgram runs the statements in filename ("-" for stdin).
func runProgram(filename string) int {
	var src io.Reader = os.Stdin
	name := "<stdin>"
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		src, name = f, filename
	}

	in := interp.New(name, src, newConfig())
	err := in.Run()
	if *dump {
		if derr := in.Vars().Dump(os.Stdout); derr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", derr)
			return 1
		}
	}
	if err != nil {
		report(err)
		return 1
	}
	return 0
}

// runEval evaluates the expression given on the command line.
func runEval(s string) int {
	in := interp.New("-e", strings.NewReader(s), newConfig())
	v, err := in.Eval()
	if err != nil {
		report(err)
		return 1
	}
	fmt.Println(v)
	return 0
}

// report prints a fatal interpreter error.
func report(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
}
