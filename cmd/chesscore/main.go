package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/session"
	"github.com/hailam/chesscore/internal/shell"
)

var (
	logLevel   = flag.String("log-level", envOr("CHESSCORE_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	logFormat  = flag.String("log-format", envOr("CHESSCORE_LOG_FORMAT", "text"), "log format (text, json, cli)")
	startFEN   = flag.String("fen", board.StartFEN, "initial position")
	cpuprofile = flag.String("cpuprofile", os.Getenv("CPUPROFILE"), "write cpu profile to file")
)

func main() {
	flag.Parse()

	logger, err := newLogger(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.WithError(err).Fatal("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.WithError(err).Fatal("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		logger.WithField("path", *cpuprofile).Info("CPU profiling enabled")
	}

	start, err := board.ParseFEN(*startFEN)
	if err != nil {
		logger.WithError(err).Fatal("invalid starting position")
	}

	s := session.New(logger, session.WithBoard(start))
	if err := shell.New(s, os.Stdin, os.Stdout, logger).Run(); err != nil {
		logger.WithError(err).Error("shell stopped")
	}
}

// newLogger builds a logger writing to w in the requested format.
func newLogger(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var h log.Handler
	switch format {
	case "text":
		h = text.New(w)
	case "json":
		h = json.New(w)
	case "cli":
		h = cli.New(w)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return &log.Logger{Handler: h, Level: lvl}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
