// cmd/bstreport/main.go
package main

import (
	bstreport "github.com/mwiater/bstreport/internal/commands"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = bstreport.SetVersionInfo
	executeCmd     = bstreport.Execute
)

// main starts the bstreport CLI by delegating to the cobra root command.
func main() {
	run()
}

func run() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
