package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

var DemoCmd = Demo{
	command: command{
		credentials: "",
		spreadsheet: "",
		url:         "",
		worksheet:   "",
		debug:       false,
	},
}

// Demo runs the reference scenario: read all rows, append a row, find a cell and update
// a cell on the first worksheet of a spreadsheet.
type Demo struct {
	command
	values string
	find   string
	row    int
	col    int
	value  string
}

func (cmd *Demo) Name() string {
	return "demo"
}

func (cmd *Demo) Description() string {
	return "Reads, appends, searches and updates a Google Sheets worksheet"
}

func (cmd *Demo) Usage() string {
	return "--credentials <file> --spreadsheet <name>"
}

func (cmd *Demo) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] demo [options]\n", APP)
	fmt.Println()
	fmt.Println("  Reads all records from the first worksheet of a spreadsheet, appends a row, finds a cell")
	fmt.Println("  by value and updates a cell. Defaults are taken from the [demo] section of the configuration")
	fmt.Println("  file.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb demo --credentials "service_account.json" --spreadsheet "My Website Data"`)
	fmt.Println()
	fmt.Println(`    sheetdb demo --credentials "service_account.json" --spreadsheet "My Website Data" \`)
	fmt.Println(`                 --values "Vikas,vikas@gmail.com,Buyer" --find "vikas@gmail.com" \`)
	fmt.Println(`                 --row 2 --col 3 --value "Seller"`)
	fmt.Println()
}

func (cmd *Demo) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("demo")

	flagset.StringVar(&cmd.values, "values", cmd.values, "Comma separated values for the appended row")
	flagset.StringVar(&cmd.find, "find", cmd.find, "Cell value to search for")
	flagset.IntVar(&cmd.row, "row", cmd.row, "Row of the updated cell (1-based)")
	flagset.IntVar(&cmd.col, "col", cmd.col, "Column of the updated cell (1-based)")
	flagset.StringVar(&cmd.value, "value", cmd.value, "New value for the updated cell")

	return flagset
}

func (cmd *Demo) Execute(args ...any) error {
	ctx, options := arguments(args...)

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	values := conf.Demo.Append
	if strings.TrimSpace(cmd.values) != "" {
		if values, err = split(cmd.values); err != nil {
			return err
		}
	}

	find := conf.Demo.Find
	if cmd.find != "" {
		find = cmd.find
	}

	row, col, value := conf.Demo.Update.Row, conf.Demo.Update.Col, conf.Demo.Update.Value
	if cmd.row != 0 {
		row = cmd.row
	}

	if cmd.col != 0 {
		col = cmd.col
	}

	if cmd.value != "" {
		value = cmd.value
	}

	// ... authorise
	s, err := cmd.authorise(ctx)
	if err != nil {
		return err
	}

	okf("Successfully authorised with Google Sheets API as %s", s.Email())

	// ... open
	sheet, err := cmd.resolve(ctx, s)
	if err != nil {
		return err
	}

	okf("Successfully opened sheet: %s", cmd.name())

	// ... read
	records, err := sheet.ReadAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Current data:")
	fmt.Fprintf(stdout, "%v\n", records)

	// ... write
	if err := sheet.AppendRow(ctx, values...); err != nil {
		return err
	}

	okf("Added new row: %v", values)

	// ... search
	cell, err := sheet.FindCell(ctx, find)
	if err != nil {
		var nerr *session.CellNotFoundError
		if errors.As(err, &nerr) {
			noticef("'%s' not found - cell not updated", nerr.Value)
			return nil
		}

		return err
	}

	okf("Found %s at row:%v col:%v", find, cell.Row, cell.Col)

	// ... update
	if err := sheet.UpdateCell(ctx, row, col, value); err != nil {
		return err
	}

	okf("Updated cell (%v,%v) to '%s'", row, col, value)

	return nil
}
