// Command beecolor colors a random bounded-degree graph with the bee-colony
// search and writes the quality trace as a PNG chart.
//
//	beecolor run   [flags]   run a search (flags override --config)
//	beecolor graph [flags]   print statistics of the generated graph
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
