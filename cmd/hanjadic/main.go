// Command hanjadic looks up hanja characters and words in the Daum hanja
// dictionary. It runs as a one-shot CLI, an HTTP service, or an MCP server.
//
// Exit codes: 0 = success (including "No result"), 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
