package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/brycegallo/C-Lisp/pkg/interpreter"
	"github.com/brycegallo/C-Lisp/pkg/parser"
)

const (
	historyFile = ".clisp_history"
	prompt      = "$ "
)

func main() {
	fmt.Println("C-lisp Version 0.0.1")
	fmt.Println("Press ctrl-c to Exit")
	fmt.Println()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		input, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(input)

		root, err := parser.Parse(input)
		if err != nil {
			// a bad line is reported and the next one read
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		res := interpreter.Eval(interpreter.Read(root))
		fmt.Print(res.Line())
	}
}
