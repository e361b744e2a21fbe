package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/Garsondee/Memory-Match/internal/assets"
	"github.com/Garsondee/Memory-Match/internal/config"
	"github.com/Garsondee/Memory-Match/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/memory-match/config.toml)")
	difficulty := flag.String("difficulty", "", "start straight into EASY, NORMAL or HARD")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to the config file and exit")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(lvl)
	if *difficulty != "" {
		cfg.Difficulty = *difficulty
	}

	if *writeConfig {
		path := *configPath
		if path == "" {
			path = config.GetConfigFilePath()
		}
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid settings")
		}
		if err := config.Save(path, cfg); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to write config")
		}
		log.Info().Str("path", path).Msg("config written")
		return
	}

	provider := assets.DirProvider{Root: cfg.AssetDir, Suffix: cfg.AssetSuffix}
	g, err := ui.New(cfg, provider, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.AssetDir).Msg("cannot create game")
	}
	if cfg.Difficulty != "" {
		if err := g.Start(cfg.Difficulty); err != nil {
			log.Fatal().Err(err).Msg("cannot start game")
		}
	}

	ebiten.SetWindowTitle(cfg.WindowTitle)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// newLogger writes human-readable lines to a terminal and JSON otherwise.
func newLogger(out io.Writer, tty bool) zerolog.Logger {
	if tty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
