package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/jrhy/boatrace/race"
)

const (
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage: boatrace <input-file>")

func main() {
	log := newLogger()
	err := run(os.Args[1:], os.Stdout, log)
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}
		os.Exit(exitError)
	}
}

func newLogger() *zap.Logger {
	var l *zap.Logger
	var err error
	if os.Getenv("BOATRACE_DEBUG") != "" {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		l, err = cfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func run(args []string, out io.Writer, log *zap.Logger) error {
	o := struct {
		Args struct {
			Input string `positional-arg-name:"input-file"`
		} `positional-args:"yes" required:"yes"`
	}{}
	p := flags.NewParser(&o, 0)
	rest, err := p.ParseArgs(args)
	if err != nil || len(rest) > 0 {
		return errUsage
	}

	races, err := race.LoadRaces(o.Args.Input)
	if err != nil {
		return err
	}
	log.Debug("loaded races", zap.String("path", o.Args.Input), zap.Int("races", len(races)))

	s, err := race.NewSolver(race.WithLogger(log))
	if err != nil {
		return err
	}
	product, err := s.Solve(context.Background(), races)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Args.Input, err)
	}
	fmt.Fprintf(out, "%d\n", product)
	return nil
}
