package commands

import (
	"encoding/csv"
	"flag"
	"fmt"
	"strings"
)

var AppendCmd = Append{}

// Append adds a single row to a worksheet.
type Append struct {
	command
	values string
}

func (cmd *Append) Name() string {
	return "append"
}

func (cmd *Append) Description() string {
	return "Appends a row to a Google Sheets worksheet"
}

func (cmd *Append) Usage() string {
	return "--credentials <file> --spreadsheet <name> --values <values>"
}

func (cmd *Append) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] append [options] --spreadsheet <name> --values <values>\n", APP)
	fmt.Println()
	fmt.Println("  Appends a row after the last row of a worksheet, one value per column starting at column A")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb append --spreadsheet "My Website Data" --values "Vikas,vikas@gmail.com,Buyer"`)
	fmt.Println(`    sheetdb append --spreadsheet "My Website Data" --values "Amit,\"amit@gmail.com\",\"Buyer, Seller\""`)
	fmt.Println()
}

func (cmd *Append) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("append")

	flagset.StringVar(&cmd.values, "values", cmd.values, "Comma separated row values (CSV quoting rules apply)")

	return flagset
}

func (cmd *Append) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.values) == "" {
		return fmt.Errorf("--values is a required option")
	}

	values, err := split(cmd.values)
	if err != nil {
		return err
	}

	sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	if err := sheet.AppendRow(ctx, values...); err != nil {
		return err
	}

	okf("Added new row: %v", values)

	return nil
}

// split parses a single line of comma separated values.
func split(s string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true

	values, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid values '%s' (%w)", s, err)
	}

	return values, nil
}
