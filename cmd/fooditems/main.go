// Command fooditems prices burgers built from stacked toppings.
package main

import (
	"os"

	"github.com/mesh-intelligence/fooditems/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
