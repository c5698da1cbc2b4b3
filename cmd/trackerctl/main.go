/*
Package main is trackerctl, the terminal front end of the game tracker.

Usage:

	trackerctl login -email ada@example.com [-password secret]
	trackerctl register -username ada -email ada@example.com [-password secret]
	trackerctl logout | whoami
	trackerctl games list | add | edit | rm
	trackerctl achievements list | add | edit | rm | search
	trackerctl ask <question>

The token is kept in TRACKER_TOKEN_FILE ($HOME/.gametracker/session.json by default) and
the API is reached at TRACKER_API_URL.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gametracker/internal/configs"
	"gametracker/internal/pkg/logx"
)

func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trackerctl: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logx.InitGlobalLoggerTo(os.Stderr, true)
	} else {
		logx.Disable()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg, os.Stdin, os.Stdout).run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "trackerctl: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: trackerctl <command> [flags]

commands:
  login         -email E [-password P]
  register      -username U -email E [-password P]
  logout
  whoami
  games         list | add -name N [-genre G] [-platform P] | edit -id ID [-name N] [-genre G] [-platform P] | rm -id ID [-yes]
  achievements  list -game ID | add -game ID -title T [-description D] [-date YYYY-MM-DD]
                edit -game ID -id ID [-title T] [-description D] [-date YYYY-MM-DD] | rm -game ID -id ID [-yes]
                search -game ID -keyword K
  ask           <question>
`)
}
