package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brycegallo/C-Lisp/pkg/lexer"
)

func main() {
	str, err := readInput()
	if err == nil {
		l := lexer.NewLexer(string(str))
		fmt.Println("Lexing...")
		for {
			token := l.NextToken()
			if token == nil {
				break
			}

			fmt.Println(token)
		}
		fmt.Println("Done.")
	} else {
		fmt.Println(err.Error())
	}
}

func readInput() ([]byte, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}

	return io.ReadAll(os.Stdin)
}
