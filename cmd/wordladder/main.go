// Command wordladder prepares dictionaries, builds weighted word graphs and
// answers ladder queries from the command line or over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
