package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kyle-bartlett/analysis-dashboards/config"
)

var GetCmd = Get{
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

// Get downloads the configured source range to a local TSV file - handy
// for checking what a sync would mirror without touching the mirror.
type Get struct {
	file  string
	debug bool
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Downloads the source spreadsheet range to a TSV file"
}

func (cmd *Get) Usage() string {
	return "--file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the configured source range to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s get --file "cpfr.tsv"`, APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("source - ID:%s  range:%s", cfg.Source.Spreadsheet, cfg.Source.Range)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	table, err := provider(cfg).ReadRange(ctx, cfg.Source.Account, cfg.Source.Spreadsheet, cfg.Source.Range)
	if err != nil {
		return err
	}

	if len(table) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "cpfr")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := writeTSV(tmp, table); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v rows to file %s", len(table), cmd.file)

	return nil
}
