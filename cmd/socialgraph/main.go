// SPDX-License-Identifier: MIT

// Command socialgraph queries a social network from the command line.
//
// Without --config it works on the built-in demo network:
//
//	socialgraph show
//	socialgraph friends Charlie
//	socialgraph mutual Alice David
//	socialgraph suggest Alice --limit 1
//	socialgraph path Bob Heidi --algo dijkstra
//	socialgraph demo
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
