package main

import (
	"fmt"
	"log"
	"os"
)

const usage = `txrecord - transaction record generator

Usage:
  txrecord generate [-seed N] [-output PATH]
  txrecord generate -records N [-dir DIR] [-seed N]
  txrecord balance [-worker NAME] [-chunk_size N] (-manifest FILE | FILE...)
  txrecord workers
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "generate":
		runGenerate(args)
	case "balance":
		runBalance(args)
	case "workers":
		runWorkers()
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}
