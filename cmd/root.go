package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kparal/dh-open/internal/dhopen"
	"github.com/kparal/dh-open/internal/dhopen/conf"
	"github.com/kparal/dh-open/pkg/util"
)

// errUsage marks the argument-validation failure path; Execute maps it to
// exit code 1.
var errUsage = errors.New("usage")

const usageText = `Použití: dh-open JMENO

Otevře v prohlížeči dva seznamy her uživatele JMENO na databaze-her.cz:
"Chci si zahrát" a "Dohráno". Obě stránky uložte na disk a poté je zpracujte
skriptem dh-hltb.py, který pro každou hru zjistí doby hraní
z howlongtobeat.com a výsledek uloží do tabulky.
`

var rootCmd = &cobra.Command{
	Use:   "dh-open JMENO",
	Short: "Otevře seznamy her z databaze-her.cz v prohlížeči",
	// The whole surface is one positional argument. Cobra's own flag
	// handling would answer -h/--help with English help text and exit
	// code 0, so arguments are inspected by hand instead.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if wantUsage(args) {
		fmt.Fprint(cmd.OutOrStdout(), usageText)
		return errUsage
	}

	cfg, loadErr := conf.Load()
	if loadErr != nil {
		cfg = conf.Default()
	}
	setupLog(cfg)
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("Failed to load config, using defaults")
	}

	opener := dhopen.OpenerFunc(func(url string) error {
		return util.OpenBrowserWith(cfg.Browser, url)
	})
	dhopen.NewService(cfg, opener).OpenLists(args[0])
	return nil
}

// wantUsage reports whether the argument list asks for the usage text:
// wrong argument count, or a help flag anywhere.
func wantUsage(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return len(args) != 1
}

func setupLog(cfg *conf.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
