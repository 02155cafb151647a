package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cliadapter "github.com/example/evn/internal/adapters/cli"
	"github.com/example/evn/internal/cli"
	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/ctxutil"
	"github.com/example/evn/internal/logging"
	"github.com/example/evn/internal/wire"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir, err := config.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	wire.Configure(cfg)
	defer wire.Close()

	ctx := ctxutil.WithRunID(context.Background(), ctxutil.NewRunID())
	logging.FromContext(ctx).Debug("starting", "args", os.Args[1:])

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		// Per-code results are already printed
		if !errors.Is(err, cliadapter.ErrInvalidCodes) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
