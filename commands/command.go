package commands

import (
	"flag"
	"fmt"
	"log"

	"github.com/kyle-bartlett/analysis-dashboards/config"
	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

const APP = "cpfr-sync"

// Options are the global command line options shared by all commands.
type Options struct {
	Config string
	Debug  bool
}

type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// Find matches a command by name. An empty name selects the sync
// command so that a bare invocation (e.g. from cron) runs a sync.
func Find(cli []Command, name string) Command {
	if name == "" {
		return &SyncCmd
	}

	for _, c := range cli {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func provider(cfg config.Config) sheets.Provider {
	if cfg.Provider == "google" {
		return sheets.NewGoogle(cfg.Credentials, cfg.Workdir)
	}

	return sheets.NewGog(cfg.GogBinary)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
