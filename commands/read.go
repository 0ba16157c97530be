package commands

import (
	"flag"
	"fmt"
)

var ReadCmd = Read{}

type Read struct {
	command
}

func (cmd *Read) Name() string {
	return "read"
}

func (cmd *Read) Description() string {
	return "Displays all records from a Google Sheets worksheet"
}

func (cmd *Read) Usage() string {
	return "--credentials <file> --spreadsheet <name>"
}

func (cmd *Read) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] read [options] --spreadsheet <name>\n", APP)
	fmt.Println()
	fmt.Println("  Displays every row after the header row as a record keyed by column header")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb read --credentials "service_account.json" --spreadsheet "My Website Data"`)
	fmt.Println()
}

func (cmd *Read) FlagSet() *flag.FlagSet {
	return cmd.flagset("read")
}

func (cmd *Read) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	records, err := sheet.ReadAll(ctx)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("retrieved %v records from %s", len(records), sheet.Title)
	}

	for i, record := range records {
		fmt.Fprintf(stdout, "%-4v %v\n", i+1, record)
	}

	return nil
}
