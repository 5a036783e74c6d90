package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"go.creack.net/calc/compiler"
	"go.creack.net/calc/history"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/vm"
)

var (
	flAST       = flag.Bool("ast", false, "Dump the parse tree instead of evaluating")
	flBytecode  = flag.Bool("bytecode", false, "Dump the compiled instructions instead of evaluating")
	flHistory   = flag.Bool("history", false, "Dump the stored history and exit")
	flNoHistory = flag.Bool("no-history", false, "Don't record evaluated expressions")
)

// Exit codes, one per pipeline stage.
const (
	exitOK = iota
	exitLex
	exitParse
	exitRuntime
	exitOther
)

func exitCode(err error) int {
	var lexErr *lexer.Error
	var parseErr *parser.ParseError
	var runtimeErr *vm.RuntimeError
	switch {
	case errors.As(err, &lexErr):
		return exitLex
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &runtimeErr):
		return exitRuntime
	}
	return exitOther
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// evalOne runs a single expression through the pipeline, honoring the
// dump flags. Returns an exit code.
func evalOne(input string) int {
	expr, err := parser.Parse(lexer.New(input))
	if err != nil {
		log.Print(err)
		return exitCode(err)
	}
	if *flAST {
		fmt.Println(expr.Dump())
		pretty.Println(expr)
		return exitOK
	}

	program := compiler.Compile(expr)
	if *flBytecode {
		fmt.Print(program.Dump())
		return exitOK
	}

	result, err := vm.Run(program)
	if err != nil {
		log.Print(err)
		return exitCode(err)
	}
	fmt.Println(formatResult(result))
	return exitOK
}

// repl reads expressions line by line with a prompt. Errors don't kill
// the session.
func repl(st *history.Store) int {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}
		result, err := parser.Run(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "calc: %s\n", err)
		} else {
			fmt.Println(formatResult(result))
			if st != nil {
				if _, err := st.Add(line, result); err != nil {
					fmt.Fprintf(os.Stderr, "calc: history: %s\n", err)
				}
			}
		}
		fmt.Print("> ")
	}
	fmt.Println()
	if err := sc.Err(); err != nil {
		log.Print(err)
		return exitOther
	}
	return exitOK
}

// batch evaluates each stdin line, stopping at the first failure.
func batch() int {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if code := evalOne(line); code != exitOK {
			return code
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return exitOther
	}
	return exitOK
}

// openHistory is best effort: the calculator works without a store.
func openHistory() *history.Store {
	if *flNoHistory {
		return nil
	}
	path, err := history.DefaultPath()
	if err != nil {
		log.Printf("history: %s", err)
		return nil
	}
	st, err := history.Open(path)
	if err != nil {
		log.Printf("history: %s", err)
		return nil
	}
	return st
}

func dumpHistory() int {
	st := openHistory()
	if st == nil {
		return exitOther
	}
	defer func() { _ = st.Close() }()

	upto, err := st.NextSeq()
	if err != nil {
		log.Printf("history: %s", err)
		return exitOther
	}
	entries, err := st.Entries(1, upto)
	if err != nil {
		log.Printf("history: %s", err)
		return exitOther
	}
	for _, entry := range entries {
		fmt.Println(entry)
	}
	return exitOK
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	flag.Parse()

	if *flHistory {
		os.Exit(dumpHistory())
	}

	// Expression on the command line: evaluate and exit. No history,
	// one-shot invocations would turn the store into noise.
	if flag.NArg() > 0 {
		os.Exit(evalOne(strings.Join(flag.Args(), " ")))
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if !interactive {
		os.Exit(batch())
	}

	st := openHistory()
	code := repl(st)
	if st != nil {
		_ = st.Close()
	}
	os.Exit(code)
}
