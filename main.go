// main.go
//
// Entry point. Two modes:
//   - default: play minesweeper in the terminal (stdin/stdout loop).
//   - -serve:  expose the same engine as a JSON API on $PORT.
// Environment is loaded from .env when present; LOG_LEVEL controls
// zerolog verbosity.

package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/olivegray/minesweeper/internal/cli"
	"github.com/olivegray/minesweeper/internal/httpserver"
	"github.com/olivegray/minesweeper/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of the terminal game")
	flag.Parse()

	if *serve {
		mem := store.NewMemoryStore()
		srv := httpserver.New(mem)
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Msg("starting minesweeper server")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	if err := cli.New(os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal().Err(err).Msg("game session failed")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
