// Command sdpcli implements the cross-language test harness verbs
// (encode/decode/schema) plus config bootstrap and profiling.
package main

import (
	"fmt"
	"os"

	"github.com/marmos91/sdp/cmd/sdpcli/commands"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	commands.Version = version
	commands.Commit = commit

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
