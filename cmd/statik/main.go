// Command statik generates a static site from a directory tree.
package main

import (
	"os"

	"github.com/dl/statik/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
