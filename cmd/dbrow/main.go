// Command dbrow copies table data between relational databases through a
// portable record codec.
package main

import (
	"os"

	"github.com/leapstack-labs/dbrow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
