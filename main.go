// numguess: guess-the-number exercises.
//
// Usage:
//
//	numguess [guess] [-reveal=false]   play the console game (default)
//	numguess hello                     print the greeting
//	numguess basics                    run the language-basics walkthrough
//	numguess serve [-addr :5175]       host the game over HTTP
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/basics"
	"github.com/robalobadob/numguess/internal/db"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/httpserver"
	"github.com/robalobadob/numguess/internal/secret"
	"github.com/robalobadob/numguess/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	cmd, args := "guess", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}
	setupLogging(cfg.LogLevel, cmd != "serve")

	switch cmd {
	case "guess":
		runGuess(cfg, args)
	case "hello":
		basics.Hello(os.Stdout)
	case "basics":
		if err := basics.All(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("basics")
		}
	case "serve":
		runServe(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want guess, hello, basics or serve)\n", cmd)
		os.Exit(2)
	}
}

// setupLogging applies LOG_LEVEL. Console commands log human-readable lines
// to stderr so stdout carries only game text.
func setupLogging(level string, console bool) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func runGuess(cfg config, args []string) {
	fs := flag.NewFlagSet("guess", flag.ExitOnError)
	reveal := fs.Bool("reveal", cfg.Reveal, "print the secret number at startup")
	_ = fs.Parse(args)

	target, err := secret.Draw(secret.Crypto{})
	if err != nil {
		log.Fatal().Err(err).Msg("draw secret number")
	}
	log.Debug().Uint32("target", target).Msg("secret drawn")

	res, err := game.Loop{In: os.Stdin, Out: os.Stdout, Target: target, Reveal: *reveal}.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read line")
	}
	log.Debug().Int("attempts", res.Attempts).Int("ignored", res.Ignored).Msg("game won")
}

func runServe(cfg config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":"+cfg.Port, "listen address")
	dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
	_ = fs.Parse(args)

	sqlDB, err := db.OpenAndMigrate(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("open database")
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(store.NewMemoryStore(), sqlDB, secret.Crypto{}, cfg.HTTP)
	log.Info().Str("addr", *addr).Msg("starting numguess server")
	if err := srv.Start(ctx, *addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server exited")
		sqlDB.Close()
		os.Exit(1)
	}
}
