// Command syncparse reports the accounts, devices and browsing artifacts
// held in browser sync-state databases.
package main

import (
	"os"

	"github.com/mesh-intelligence/syncparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
