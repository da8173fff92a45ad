package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	root := rootCmd()
	root.AddCommand(doctorCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
