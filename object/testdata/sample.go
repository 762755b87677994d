package main

import "fmt"

// Compile with `go tool compile -p main -o sample.o sample.go` using the host's SDK.

func Run(args []string) int {
	for _, a := range args {
		fmt.Println(a)
	}
	return len(args) - 1
}

func Panic(args []string) int {
	panic("sample panic")
}
