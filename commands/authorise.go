package commands

import (
	"flag"
	"fmt"
	"strings"
)

var AuthoriseCmd = Authorise{}

// Authorise checks a service account credentials file and, optionally, that a
// spreadsheet has been shared with the service account.
type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Verifies that sheetdb can access a Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> [--spreadsheet <name>]"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Loads the service account credentials and displays the service account e-mail address that")
	fmt.Println("  spreadsheets must be shared with. If a spreadsheet is configured, also verifies that it is")
	fmt.Println("  accessible and lists the worksheets.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdb authorise --credentials "service_account.json"`)
	fmt.Println(`    sheetdb authorise --credentials "service_account.json" --spreadsheet "My Website Data"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	ctx, options := arguments(args...)

	if _, err := cmd.configure(options); err != nil {
		return err
	}

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	s, err := cmd.authorise(ctx)
	if err != nil {
		return err
	}

	okf("Authorised as %s", s.Email())

	if strings.TrimSpace(cmd.spreadsheet) == "" && strings.TrimSpace(cmd.url) == "" {
		return nil
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	sheet, err := cmd.resolve(ctx, s)
	if err != nil {
		return err
	}

	okf("Spreadsheet '%s' is accessible (worksheet '%s')", cmd.name(), sheet.Title)

	return nil
}
