package commands

import (
	"flag"
	"fmt"
)

var FindCmd = Find{}

// Find locates the first cell with a given value.
type Find struct {
	command
	value string
}

func (cmd *Find) Name() string {
	return "find"
}

func (cmd *Find) Description() string {
	return "Finds the first cell in a Google Sheets worksheet with a value"
}

func (cmd *Find) Usage() string {
	return "--credentials <file> --spreadsheet <name> --value <value>"
}

func (cmd *Find) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] find [options] --spreadsheet <name> --value <value>\n", APP)
	fmt.Println()
	fmt.Println("  Searches a worksheet row by row for the first cell exactly matching the value")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb find --spreadsheet "My Website Data" --value "vikas@gmail.com"`)
	fmt.Println()
}

func (cmd *Find) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("find")

	flagset.StringVar(&cmd.value, "value", cmd.value, "Cell value (exact, case-sensitive)")

	return flagset
}

func (cmd *Find) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if cmd.value == "" {
		return fmt.Errorf("--value is a required option")
	}

	sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	cell, err := sheet.FindCell(ctx, cmd.value)
	if err != nil {
		return err
	}

	okf("Found %s at row:%v col:%v (%s)", cmd.value, cell.Row, cell.Col, cell.A1())

	return nil
}
