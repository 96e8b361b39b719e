package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kyle-bartlett/analysis-dashboards/config"
	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

var PutCmd = Put{}

// Put uploads a local TSV file to the mirror range - the manual repair
// path for a run that cleared the mirror and then failed to rewrite it.
type Put struct {
	file  string
	debug bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV file to the mirror spreadsheet range"
}

func (cmd *Put) Usage() string {
	return "--file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] put --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to the configured mirror range")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s put --file "cpfr.tsv"`, APP)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("put", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	anchor, err := sheets.Anchor(cfg.Mirror.Range)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("mirror - ID:%s  range:%s  anchor:%s", cfg.Mirror.Spreadsheet, cfg.Mirror.Range, anchor)
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	table, err := readTSV(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := provider(cfg).UpdateRange(ctx, cfg.Mirror.Account, cfg.Mirror.Spreadsheet, anchor, table); err != nil {
		return err
	}

	infof("Uploaded TSV file %v to %v", cmd.file, cfg.Mirror.Range)

	return nil
}
