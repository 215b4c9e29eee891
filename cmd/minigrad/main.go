// Package main provides the minigrad command line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0"

type command struct {
	name, usage string
	run         func(args []string) error
}

var commands = []command{
	{"version", "Show version", func([]string) error {
		fmt.Printf("minigrad %s\n", version)
		return nil
	}},
	{"regress", "Fit a linear regression on synthetic data with reverse-mode gradients", runRegress},
	{"fetch", "Download a dataset archive into the local cache and summarize it", runFetch},
}

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "minigrad %s: eager reverse-mode automatic differentiation\n\n", version)
	_, _ = fmt.Fprintf(out, "Usage: minigrad [logging flags] <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		_, _ = fmt.Fprintf(out, "  %-10s %s\n", c.name, c.usage)
	}
	_, _ = fmt.Fprintf(out, "\nLogging flags:\n")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	for _, c := range commands {
		if c.name == args[0] {
			if err := c.run(args[1:]); err != nil {
				klog.Fatalf("%s: %+v", c.name, err)
			}
			klog.Flush()
			return
		}
	}
	klog.Errorf("Unknown command %q. See 'minigrad -help'.", args[0])
	os.Exit(2)
}
