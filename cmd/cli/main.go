// topup - pasted text to (id, amount) records
//
// topup extracts customer ids and recharge amounts from freeform pasted text
// and copies individual fields to the clipboard.
package main

import (
	"os"

	"github.com/ccollicutt/topup/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
