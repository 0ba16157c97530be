package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var PutCmd = Put{}

type Put struct {
	command
	file string
}

func (c *Put) FlagSet() *flag.FlagSet {
	flagset := c.flagset("put")

	flagset.StringVar(&c.file, "file", c.file, "TSV file")

	return flagset
}

func (c *Put) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := c.configure(options); err != nil {
		return err
	}

	if err := c.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	f, err := os.Open(c.file)
	if err != nil {
		return err
	}

	defer f.Close()

	columns, rows, err := tsvToRows(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%w)", err)
	} else if len(rows) == 0 {
		warnf("TSV file %v has no data rows", c.file)
	}

	sheet, err := c.open(ctx)
	if err != nil {
		return err
	}

	grid, err := sheet.Values(ctx)
	if err != nil {
		return err
	}

	// ... empty worksheet: the TSV header becomes the worksheet header
	if len(grid) == 0 {
		if err := sheet.AppendRow(ctx, columns...); err != nil {
			return err
		}

		grid = [][]string{columns}
	}

	aligned, err := align(grid[0], columns, rows)
	if err != nil {
		return err
	}

	for i, row := range aligned {
		if err := sheet.AppendRow(ctx, row...); err != nil {
			return fmt.Errorf("row %v: %w", i+1, err)
		}

		if c.debug {
			debugf("appended %v", row)
		}
	}

	infof("Appended %v rows from TSV file %v to worksheet %v", len(aligned), c.file, sheet.Title)

	return nil
}

func (c *Put) Name() string {
	return "put"
}

func (c *Put) Description() string {
	return "Appends the rows of a TSV file to a Google Sheets worksheet"
}

func (c *Put) Usage() string {
	return "--credentials <file> --spreadsheet <name> --file <file>"
}

func (c *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [options] put --credentials <credentials> --spreadsheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Appends the rows of a TSV file to a Google Sheets worksheet, one row at a time. TSV columns")
	fmt.Println("  are matched to the worksheet header by name.")
	fmt.Println()

	helpOptions(c.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    sheetdb --debug put --credentials "service_account.json" \`)
	fmt.Println(`                        --spreadsheet "My Website Data" \`)
	fmt.Println(`                        --file "users.tsv"`)
	fmt.Println()
}
