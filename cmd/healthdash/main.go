package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/healthdash/internal/cli"
	"github.com/julianstephens/healthdash/internal/fitbit"
	"github.com/julianstephens/healthdash/internal/healthlog"
	"github.com/julianstephens/healthdash/internal/logger"
	"github.com/julianstephens/healthdash/internal/publish"
	"github.com/julianstephens/healthdash/internal/storage"
)

var CLI struct {
	Version     kong.VersionFlag
	Data        string `help:"Dataset path; .json selects the JSON backend, anything else SQLite." type:"path" env:"HEALTHDASH_DATA" default:"~/.local/share/healthdash/health-data.json"`
	Logs        string `help:"Directory of daily markdown logs (YYYY-MM-DD.md)." type:"path" env:"HEALTHDASH_LOGS" default:"~/.local/share/healthdash/logs"`
	Site        string `help:"Dashboard site directory; npm run build/deploy run here." type:"path" env:"HEALTHDASH_SITE" default:"."`
	FitbitToken string `help:"Fitbit API bearer token." env:"FITBIT_ACCESS_TOKEN"`
	JSONLog     bool   `help:"Emit structured JSON logs." env:"HEALTHDASH_JSON_LOG"`
	Verbose     bool   `help:"Enable debug-level logging." short:"v"`

	Update cli.UpdateCmd `cmd:"" help:"Record a day's log and republish the dashboard." default:"withargs"`
	Init   cli.InitCmd   `cmd:"" help:"Initialize an empty dataset."`
	Day    cli.DayCmd    `cmd:"" help:"Show a recorded day."`
	Tui    cli.TuiCmd    `cmd:"" help:"Browse the dataset interactively."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
	Backup struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a dataset backup."`
		List   cli.BackupListCmd   `cmd:"" help:"List dataset backups."`
	} `cmd:"" help:"Manage dataset backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("healthdash"),
		kong.Description("Daily health dashboard updater: parses the day's food/workout log, merges Fitbit metrics, and republishes the dashboard"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	log, err := logger.New(CLI.JSONLog, CLI.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Backend by extension, same convention as the dataset path itself
	var store storage.Provider
	if strings.HasSuffix(CLI.Data, ".json") {
		store = storage.NewJSONStore(CLI.Data)
	} else {
		store = storage.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{
		Store:   store,
		Locator: healthlog.NewLocator(CLI.Logs),
		Metrics: &fitbit.Resilient{
			Fetcher: &fitbit.Client{AccessToken: CLI.FitbitToken},
			Logger:  log,
		},
		Publisher:   &publish.NPMRunner{Dir: CLI.Site},
		Logger:      log,
		FitbitToken: CLI.FitbitToken,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
