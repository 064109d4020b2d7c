package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dayanaadylkhanova/randomiser/internal/adapter/random"
	"github.com/dayanaadylkhanova/randomiser/internal/adapter/transport/console"
	"github.com/dayanaadylkhanova/randomiser/internal/app"
	"github.com/dayanaadylkhanova/randomiser/internal/format"
	"github.com/dayanaadylkhanova/randomiser/internal/service"
	"github.com/dayanaadylkhanova/randomiser/pkg/config"
	"github.com/dayanaadylkhanova/randomiser/pkg/logger"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log := logger.New(os.Stderr, cfg.LogFormat, logger.LevelFromEnv(cfg.LogLevel))

	rnd := service.NewRandomiser(log, random.NewSecure(), format.NewFormatter(cfg.Language()), cfg.Limits())
	session := console.NewSession(log, os.Stdin, os.Stdout, rnd, cfg.Limits())

	if err := app.New(session).Run(); err != nil {
		log.Error("session stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
