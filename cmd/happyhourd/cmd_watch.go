package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"happyhourd"
)

const watchHelp = `Type to search (input settles after the debounce window).
Filter commands:
  /neighborhood <name>   /cuisine <name>   /day <weekday>
  /price <1-4>           /time any|now|soon|today
  /deal any|drinks|food  /clear            /quit`

// runWatch is an interactive search loop. Text lines are treated as
// keystroke input and go through the debouncer; filter commands are
// applied immediately but their recomputation is staged through the
// coalescer so it never blocks reading the next line.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, err := newEngine(ctx, false)
	if err != nil {
		return err
	}
	defer eng.Close()

	var mu sync.Mutex
	current := happyhourd.SearchQuery{Limit: cfg.SearchLimit()}

	rerun := func() {
		mu.Lock()
		q := current
		mu.Unlock()

		resp := eng.Search(ctx, q)
		fmt.Print(happyhourd.FormatResults(&resp, q.Text))
	}

	deb := happyhourd.NewDebouncer(cfg.DebounceDelay(), func(text string) {
		mu.Lock()
		current.Text = text
		mu.Unlock()
		rerun()
	})
	defer deb.Stop()

	co := happyhourd.NewCoalescer()
	defer co.Close()

	fmt.Println(watchHelp)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		if !strings.HasPrefix(line, "/") {
			deb.Set(line)
			continue
		}

		cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
		arg = strings.TrimSpace(arg)

		if cmd == "quit" || cmd == "q" {
			break
		}

		mu.Lock()
		switch cmd {
		case "neighborhood":
			current.Neighborhood = arg
		case "cuisine":
			current.Cuisine = arg
		case "day":
			current.Day = arg
		case "price":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 || n > 4 {
				mu.Unlock()
				fmt.Println("price must be 0-4")
				continue
			}
			current.MaxPrice = n
		case "time":
			current.Time = happyhourd.TimeFilter(arg)
		case "deal":
			current.Deal = happyhourd.DealFilter(arg)
		case "clear":
			current = happyhourd.SearchQuery{Limit: cfg.SearchLimit()}
		default:
			mu.Unlock()
			fmt.Println(watchHelp)
			continue
		}
		mu.Unlock()

		// Filter changes are not debounced, but the recomputation is
		// deferrable: a newer filter state supersedes it.
		co.Submit(rerun)
	}

	return scanner.Err()
}
