package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/asteroid-arena/internal/audio"
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/loop/client"
	"github.com/tomz197/asteroid-arena/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv("ARENA_CONFIG", ""))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	// The terminal belongs to the game, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("ARENA_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "arena"})

	opts := []server.Option{server.WithLogger(logger)}
	if spk, err := audio.OpenSpeaker(logger); err != nil {
		logger.Warn("Audio disabled", "err", err)
	} else {
		defer spk.Close()
		opts = append(opts, server.WithAudio(spk))
	}

	srv, err := server.NewServer(cfg, opts...)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c, err := client.NewClient(srv, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Name:  "local",
		Seats: cfg.Players,
	})
	if err != nil {
		return err
	}
	return c.Run()
}
