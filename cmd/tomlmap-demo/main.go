// Command tomlmap-demo writes sample objects to TOML files and reads one
// back into a type without defaults.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
