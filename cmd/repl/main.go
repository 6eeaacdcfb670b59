package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/lisp-runtime/eval"
	"github.com/wippyai/lisp-runtime/reader"
)

func main() {
	var (
		expr        = flag.String("e", "", "Evaluate one expression and exit")
		list        = flag.Bool("list", false, "List builtins and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		eval.SetLogger(logger)
	}

	if *list {
		fmt.Print("Builtins:\n" + describeBuiltins())
		return
	}

	env := eval.NewEnv()

	if *expr != "" {
		if !evalLine(*expr, env) {
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(env); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runPrompt(env)
		return
	}
	runScript(env)
}

// runPrompt is the plain line-edited REPL.
func runPrompt(env *eval.Env) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, name := range builtinNames() {
			if strings.HasPrefix("("+name, prefix) || strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
		return out
	})

	for {
		input, err := line.Prompt("lisp> ")
		if err != nil {
			fmt.Println()
			return
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		evalLine(input, env)
	}
}

// runScript evaluates everything on stdin, one result per form.
func runScript(env *eval.Env) {
	scanner := bufio.NewScanner(os.Stdin)
	ok := true
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if !evalLine(text, env) {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// evalLine reads and evaluates every form on the line, printing results to
// stdout and reporting failures with their backtrace on stderr.
func evalLine(src string, env *eval.Env) bool {
	forms, err := reader.ReadAll(src)
	if err != nil {
		eval.Report(os.Stderr, eval.Wrap(err))
		return false
	}
	ok := true
	for _, form := range forms {
		res, err := evalForm(form, env)
		if err != nil {
			eval.Report(os.Stderr, err)
			ok = false
			continue
		}
		fmt.Println(res)
	}
	return ok
}
