package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"msme-carbon/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for input the caller can fix and 1 for everything else
func exitCode(err error) int {
	code, ok := errors.CodeOf(err)
	if ok && (strings.HasPrefix(string(code), "VALIDATION_") || strings.HasPrefix(string(code), "INDICATOR_")) {
		return 2
	}
	return 1
}
