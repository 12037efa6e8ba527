// Package main is the entry point for the srmkit CLI.
//
// srmkit prepares the network and shared file storage a serverless workload
// runs against. Every command converges: running it again for the same rule
// reuses what already exists.
//
// Commands: network init, storage init, version.
//
// For detailed usage information, run:
//
//	srmkit --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/srmkit/cmd/srmkit/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
