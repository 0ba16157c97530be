package commands

import (
	"flag"
	"fmt"
)

var UpdateCmd = Update{}

// Update overwrites a single worksheet cell.
type Update struct {
	command
	row   int
	col   int
	value string
}

func (cmd *Update) Name() string {
	return "update"
}

func (cmd *Update) Description() string {
	return "Updates a cell in a Google Sheets worksheet"
}

func (cmd *Update) Usage() string {
	return "--credentials <file> --spreadsheet <name> --row <row> --col <col> --value <value>"
}

func (cmd *Update) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] update [options] --spreadsheet <name> --row <row> --col <col> --value <value>\n", APP)
	fmt.Println()
	fmt.Println("  Overwrites the cell at the 1-based row and column. Cells outside the worksheet grid are rejected.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb update --spreadsheet "My Website Data" --row 2 --col 3 --value "Seller"`)
	fmt.Println()
}

func (cmd *Update) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("update")

	flagset.IntVar(&cmd.row, "row", cmd.row, "Cell row (1-based)")
	flagset.IntVar(&cmd.col, "col", cmd.col, "Cell column (1-based)")
	flagset.StringVar(&cmd.value, "value", cmd.value, "New cell value")

	return flagset
}

func (cmd *Update) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if cmd.row < 1 {
		return fmt.Errorf("--row is a required option (1-based)")
	}

	if cmd.col < 1 {
		return fmt.Errorf("--col is a required option (1-based)")
	}

	sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	if err := sheet.UpdateCell(ctx, cmd.row, cmd.col, cmd.value); err != nil {
		return err
	}

	okf("Updated cell (%v,%v) to '%s'", cmd.row, cmd.col, cmd.value)

	return nil
}
