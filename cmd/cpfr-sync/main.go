package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kyle-bartlett/analysis-dashboards/commands"
	"github.com/kyle-bartlett/analysis-dashboards/config"
)

var cli = []commands.Command{
	&commands.SyncCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: config.DefaultConfig,
	Debug:  false,
}

func main() {
	godotenv.Load()

	if path := os.Getenv("CPFR_SYNC_CONFIG"); path != "" {
		options.Config = path
	}

	flag.StringVar(&options.Config, "config", options.Config, "Path for the TOML configuration file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if flag.Arg(0) == "help" {
		if c := commands.Find(cli, flag.Arg(1)); c != nil && flag.Arg(1) != "" {
			c.Help()
		} else {
			usage()
		}

		os.Exit(0)
	}

	cmd := commands.Find(cli, flag.Arg(0))
	if cmd == nil {
		usage()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	if err := cmd.FlagSet().Parse(args); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range cli {
		fmt.Printf("    %-8s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Printf("  Running %s with no command is equivalent to '%s sync'.\n", commands.APP, commands.APP)
	fmt.Println()
}
