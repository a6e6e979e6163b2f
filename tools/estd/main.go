package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/estd/debug"
	"github.com/clktmr/estd/tools/vecsh"
)

const usageString = `estd is a tool for trying out the embedded containers on the host.

Usage:

	%s <command> [arguments]

The commands are:

	vecsh    run scripts of vector operations
	policy   print the assertion policy selected by build tags
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "vecsh":
		vecsh.Main(flag.Args())
	case "policy":
		fmt.Printf("enabled=%v policy=%v\n", debug.Enabled, debug.Active)
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
