package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brycegallo/C-Lisp/pkg/parser"
)

func main() {
	str, err := readInput()
	if err == nil {
		fmt.Println("Parsing...")
		root, err := parser.Parse(string(str))
		if err != nil {
			fmt.Println(err.Error())
			return
		}

		fmt.Print(root)
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
