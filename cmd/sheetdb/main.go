package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-app-sheetdb/commands"
)

var cli = []uhppoted.Command{
	&uhppoted.Version{
		Application: commands.APP,
		Version:     commands.VERSION,
	},
	&commands.AuthoriseCmd,
	&commands.DemoCmd,
	&commands.ReadCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.AppendCmd,
	&commands.FindCmd,
	&commands.UpdateCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cmd == nil {
		help.Execute(ctx)
		os.Exit(1)
	}

	if err = cmd.Execute(ctx, &options); err != nil {
		commands.Report(color.Output, err)
		os.Exit(1)
	}
}
