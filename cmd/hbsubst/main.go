package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aescanero/hbsubst/internal/snapshot"
)

var (
	// Version is set at build time
	Version = "0.1.0"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args, os.Environ, snapshot.SystemHost{}, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
