package main

import "github.com/claritext/claritext/internal/cmd"

func main() {
	cmd.Execute()
}
