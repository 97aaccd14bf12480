// Command wikt2sql loads a Kaikki/wiktextract JSONL dump into a relational
// dictionary database (SQLite by default, PostgreSQL optionally).
//
// Usage:
//
//	wikt2sql INPUT_FILE [-o OUTPUT] [--schema FILE] [--driver sqlite|postgres]
//	         [--config FILE] [--dry-run] [--no-progress] [--version]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
