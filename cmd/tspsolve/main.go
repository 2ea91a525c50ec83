// Command tspsolve solves small travelling-salesman instances exactly.
//
// Usage:
//
//	tspsolve solve --nodes 9 --seed 42            # random K_9, auto algorithm
//	tspsolve solve --graph city.yaml --algorithm heldkarp --export
//	tspsolve generate --nodes 12 --seed 7 -o city.yaml
//	tspsolve version
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

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
