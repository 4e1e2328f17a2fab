package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/microlog-lang/microlog"
	"github.com/microlog-lang/microlog/engine"
)

const (
	prompt      = "&- "
	morePrompt  = "; "
	historyFile = ".microlog_history"
)

func main() {
	var verbose bool
	var depth int
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log unknown procedures and engine internals")
	pflag.IntVarP(&depth, "depth", "d", 0, "resolution depth limit (default 1000)")
	pflag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	i := microlog.New()
	if depth > 0 {
		i.VM().DepthLimit = depth
	}
	if verbose {
		i.VM().Unknown = engine.UnknownWarning
	}
	i.VM().OnEvalError = func(expr engine.Term, err error) {
		fmt.Printf("Error: cannot evaluate %s: %s\n", expr, err)
	}

	for _, f := range pflag.Args() {
		consult(i, f)
	}

	repl(i)
}

func repl(i *microlog.Interpreter) {
	fmt.Println("microlog v1.0")
	fmt.Println("Type 'help' for commands, 'quit' to exit")
	fmt.Println()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch {
		case line == "quit", line == "exit":
			fmt.Println("Goodbye!")
			return
		case line == "help":
			help()
		case line == "listing":
			listing(i)
		case line == "clear":
			i.Database().Clear()
			fmt.Println("Database cleared")
		case strings.HasPrefix(line, "consult "), strings.HasPrefix(line, "load "):
			parts := strings.SplitN(line, " ", 2)
			consult(i, strings.TrimSpace(parts[1]))
		case strings.HasPrefix(line, "save "):
			parts := strings.SplitN(line, " ", 2)
			save(i, strings.TrimSpace(parts[1]))
		case strings.HasPrefix(line, "?"):
			query(i, ln, strings.TrimSpace(line[1:]))
		case strings.HasSuffix(line, "."):
			if err := i.Assert(line); err != nil {
				fmt.Printf("Error parsing clause: %s\n", err)
				continue
			}
			fmt.Println("ok")
		case strings.HasPrefix(line, "("):
			fmt.Println("Error: Clauses must end with a period (.) to be added")
			fmt.Println("       Use '?' to query instead")
		default:
			fmt.Printf("Unknown command: %s\n", line)
			fmt.Println("Type 'help' for available commands")
		}
	}
}

func help() {
	fmt.Println("microlog Commands:")
	fmt.Println("  (fact args...).         - Add a fact (note the period!)")
	fmt.Println("  ((head) (body)...).     - Add a rule (note the period!)")
	fmt.Println("  ? (query args...)       - Query the database")
	fmt.Println("  listing                 - Show all clauses")
	fmt.Println("  clear                   - Clear database")
	fmt.Println("  consult <file>          - Load clauses from file")
	fmt.Println("  load <file>             - Load clauses from file (same as consult)")
	fmt.Println("  save <file>             - Save database to file")
	fmt.Println("  help                    - Show this message")
	fmt.Println("  quit / exit             - Exit microlog")
}

func listing(i *microlog.Interpreter) {
	cs := i.Database().Enumerate()
	if len(cs) == 0 {
		fmt.Println("Database is empty")
		return
	}
	for _, c := range cs {
		fmt.Println(c)
	}
}

func query(i *microlog.Interpreter, ln *liner.State, text string) {
	sols, err := i.Query(text)
	if err != nil {
		fmt.Printf("Error processing query: %s\n", err)
		return
	}
	defer func() {
		_ = sols.Close()
	}()

	names := sols.Vars()
	count := 0
	for sols.Next() {
		count++
		if len(names) == 0 {
			fmt.Println("yes")
		} else {
			m := map[string]engine.Term{}
			_ = sols.Scan(m)
			for _, n := range names {
				fmt.Printf("%s = %s\n", n, m[n])
			}
		}
		if !wantMore(ln) {
			return
		}
	}
	if err := sols.Err(); err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}
	if count == 0 {
		fmt.Println("no")
	} else {
		fmt.Println("no more solutions")
	}
}

func wantMore(ln *liner.State) bool {
	resp, err := ln.Prompt(morePrompt)
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(resp)) != "n"
}

func consult(i *microlog.Interpreter, filename string) {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}
	count := 0
	for n, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if err := i.Assert(line); err != nil {
			fmt.Printf("Warning: Error on line %d: %s\n", n+1, err)
			continue
		}
		count++
	}
	fmt.Printf("Loaded %d clause(s) from %s\n", count, filename)
}

func save(i *microlog.Interpreter, filename string) {
	cs := i.Database().Enumerate()
	var sb strings.Builder
	sb.WriteString("% microlog database\n")
	fmt.Fprintf(&sb, "%% Saved clauses: %d\n\n", len(cs))
	for _, c := range cs {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		fmt.Printf("Error saving file: %s\n", err)
		return
	}
	fmt.Printf("Saved %d clause(s) to %s\n", len(cs), filename)
}
