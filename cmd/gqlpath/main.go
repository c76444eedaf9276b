// Command gqlpath shows how to get to GraphQL types and fields from the root query and mutation types.
//
// Usage:
//
//	gqlpath FILE SEARCH [flags]
//	gqlpath --save-config [flags]
//
// FILE is an introspection result (JSON), a schema (.graphql), a server URL (http/https/ws/wss)
// or - for standard input.  SEARCH is a type or field name (or several separated by commas).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
