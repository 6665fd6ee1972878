package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	lisp "github.com/ian-bird/lispy/lisp"
)

const historyFile = ".lispy_history"

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func main() {
	history := flag.String("history", defaultHistoryPath(), "file the repl history is kept in, empty to disable")
	prompt := flag.String("prompt", "lispy> ", "repl prompt")
	expr := flag.String("e", "", "evaluate an expression, print it and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	frame := lisp.NewTopLevelFrame()
	for _, fileName := range flag.Args() {
		if err := lisp.LoadFile(fileName, frame); err != nil {
			fmt.Fprintf(os.Stderr, "error loading file: %v\n", err)
			os.Exit(1)
		}
	}

	if *expr != "" {
		result, err := lisp.EvalString(*expr, frame)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(lisp.Print(result))
		return
	}

	lisp.Repl(frame, *prompt, *history)
}
