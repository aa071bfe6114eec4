package main

import (
	"fmt"
	"os"
)

const usage = `happyhourd - Happy hour venue search

Usage:
  happyhourd <command> [options]

Commands:
  init      Generate a .happyhourd.toml configuration file
  search    Search venues with free text and filters
  list      List venues with structured filters
  stats     Show aggregate statistics
  fetch     Fetch venue data from the places API (or cached snapshot)
  watch     Interactive search with debounced input

Use "happyhourd <command> -help" for more information about a command.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = runInit(args)
	case "search":
		err = runSearch(args)
	case "list":
		err = runList(args)
	case "stats":
		err = runStats(args)
	case "fetch":
		err = runFetch(args)
	case "watch":
		err = runWatch(args)
	case "-h", "-help", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
