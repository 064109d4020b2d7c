package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dayanaadylkhanova/randomiser/internal/adapter/random"
	"github.com/dayanaadylkhanova/randomiser/internal/format"
	"github.com/dayanaadylkhanova/randomiser/internal/service"
	"github.com/dayanaadylkhanova/randomiser/pkg/config"
	"github.com/dayanaadylkhanova/randomiser/pkg/logger"
)

// shuffle prints the lines of stdin in random order.
func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	log := logger.New(os.Stderr, cfg.LogFormat, logger.LevelFromEnv(cfg.LogLevel))

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("read stdin failed", "err", err)
		os.Exit(1)
	}

	rnd := service.NewRandomiser(log, random.NewSecure(), format.NewFormatter(cfg.Language()), cfg.Limits())
	out, err := rnd.ShuffleList(string(raw))
	if err != nil {
		fmt.Fprintln(os.Stderr, rnd.Explain(err))
		os.Exit(1)
	}
	if out.Text != "" {
		fmt.Println(out.Text)
	}
}
