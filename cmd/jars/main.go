// Copyright IBM Corp. 2023, 2025

package main

import (
	"os"

	"github.com/hashicorp/go-jars/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main start go-jars cli `jars`
func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, version, commit, date))
}
