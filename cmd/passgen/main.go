package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/passgen/passgen-go/internal/cli"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/generator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetLogLoggerLevel(cfg.LogLevel)

	flags, err := cli.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	src := cfg.Source()
	if flags.Seed != nil {
		src = generator.NewSource(*flags.Seed)
	}

	if flags.Interactive {
		s := cli.NewSession(cfg.Defaults, flags.Overrides, cfg.MaxLength, src, cli.SystemClipboard(), os.Stdout)
		if err := s.Run(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Run(flags, cfg.Defaults, cfg.MaxLength, src, cli.SystemClipboard(), os.Stdout); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
