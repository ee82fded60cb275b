package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"WallRotate/internal/config"
	"WallRotate/internal/display"
	"WallRotate/internal/logger"
	"WallRotate/internal/process"
	"WallRotate/internal/rotation"
	"WallRotate/internal/wallpaper"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load", "err", err)
		return 1
	}
	if err := config.ApplyEnv(cfg, nil); err != nil {
		return usageError(stderr, err)
	}
	opts, err := config.ParseArgs(args, *cfg)
	if opts.Help {
		config.Usage(stdout)
		return 0
	}
	if err != nil {
		return usageError(stderr, err)
	}
	logger.Configure(opts.LogLevel)

	if opts.WriteConfig {
		if err := config.Save(&opts.Config); err != nil {
			logger.Error("config save", "err", err)
			return 1
		}
		p, _ := config.Path()
		logger.Info("settings saved", "path", p)
	}

	if opts.PrintState {
		entries, err := rotation.New(opts.Dir, opts.IntervalDuration(), nil).State()
		if err != nil {
			logger.Error("read state", "err", err)
			return 1
		}
		if err := wallpaper.FormatState(stdout, entries); err != nil {
			logger.Error("print state", "err", err)
			return 1
		}
		return 0
	}

	if n, err := process.KillOtherInstances(); err != nil {
		logger.Warn("could not stop other instances", "err", err)
	} else if n > 0 {
		logger.Info("stopped running instance", "count", n)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setter, err := display.Select(display.EnvFromOS(), display.Options{
		Program:     opts.Program,
		RestartSWWW: opts.RestartSWWW,
	})
	if err != nil {
		logger.Error("select wallpaper setter", "err", err)
		return 1
	}
	logger.Info("using wallpaper setter", "name", setter.Name())
	if err := setter.Init(ctx); err != nil {
		logger.Error("start wallpaper setter", "name", setter.Name(), "err", err)
		return 1
	}
	defer func() {
		if err := setter.Close(); err != nil {
			logger.Warn("stop wallpaper setter", "err", err)
		}
	}()

	logger.Info("rotating wallpapers", "dir", opts.Dir, "interval", opts.IntervalDuration())
	if err := rotation.New(opts.Dir, opts.IntervalDuration(), setter).Run(ctx); err != nil {
		logger.Error("rotation failed", "err", err)
		return 1
	}
	return 0
}

func usageError(w io.Writer, err error) int {
	fmt.Fprintln(w, "wallrotate:", err)
	fmt.Fprintln(w)
	config.Usage(w)
	return 2
}
