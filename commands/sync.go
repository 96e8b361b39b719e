package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/kyle-bartlett/analysis-dashboards/config"
	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

var SyncCmd = Sync{}

// Sync mirrors the configured source range into the mirror spreadsheet,
// replacing whatever the mirror held before. The pipeline is a fixed
// three call sequence - read, clear, update - with the clear as a best
// effort hygiene step that never gates the update.
type Sync struct {
	debug    bool
	provider sheets.Provider
}

func (cmd *Sync) Name() string {
	return "sync"
}

func (cmd *Sync) Description() string {
	return "Mirrors the source spreadsheet range into the mirror spreadsheet"
}

func (cmd *Sync) Usage() string {
	return ""
}

func (cmd *Sync) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] sync\n", APP)
	fmt.Println()
	fmt.Println("  Reads the source range, clears the mirror range and rewrites it with the data")
	fmt.Println("  just read. The source and mirror are fixed by the configuration file.")
	fmt.Println()
}

func (cmd *Sync) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("sync", flag.ExitOnError)
}

func (cmd *Sync) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	p := cmd.provider
	if p == nil {
		p = provider(cfg)
	}

	return cmd.sync(context.Background(), p, cfg)
}

func (cmd *Sync) sync(ctx context.Context, p sheets.Provider, cfg config.Config) error {
	anchor, err := sheets.Anchor(cfg.Mirror.Range)
	if err != nil {
		return err
	}

	started := time.Now().Format("2006-01-02 15:04:05")
	fmt.Printf("[%s] Starting CPFR sync...\n", started)

	if cmd.debug {
		debugf("source - ID:%s  range:%s", cfg.Source.Spreadsheet, cfg.Source.Range)
		debugf("mirror - ID:%s  range:%s  anchor:%s", cfg.Mirror.Spreadsheet, cfg.Mirror.Range, anchor)
	}

	// ... read from the source sheet
	fmt.Println("  Reading source sheet...")

	rctx, rcancel := context.WithTimeout(ctx, cfg.Timeout)
	defer rcancel()

	table, err := p.ReadRange(rctx, cfg.Source.Account, cfg.Source.Spreadsheet, cfg.Source.Range)
	if err != nil {
		return err
	}

	rows := len(table)
	fmt.Printf("  Got %d rows from source sheet\n", rows)

	// ... clear the mirror range. Best effort only - the update below
	//     overwrites the full extent of the new data and clearing just
	//     removes leftovers outside it
	fmt.Println("  Clearing mirror sheet...")

	cctx, ccancel := context.WithTimeout(ctx, cfg.Timeout)
	defer ccancel()

	if err := p.ClearRange(cctx, cfg.Mirror.Account, cfg.Mirror.Spreadsheet, cfg.Mirror.Range); err != nil {
		warnf("clear of %s failed (%v) - stale cells outside the new data may remain", cfg.Mirror.Range, err)
	}

	// ... write to the mirror sheet
	fmt.Println("  Writing to mirror sheet...")

	uctx, ucancel := context.WithTimeout(ctx, cfg.Timeout)
	defer ucancel()

	if err := p.UpdateRange(uctx, cfg.Mirror.Account, cfg.Mirror.Spreadsheet, anchor, table); err != nil {
		return err
	}

	fmt.Printf("[%s] Sync complete - %d rows mirrored\n", started, rows)

	return nil
}
