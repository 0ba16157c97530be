package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/option"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

const APP = "sheetdb"
const VERSION = "v0.1.0"

// Options holds the global command line options. ClientOptions are appended to the
// Google API client options, e.g. to direct requests to a different endpoint.
type Options struct {
	Config        string
	Debug         bool
	ClientOptions []option.ClientOption
}

// arguments unpacks the context and global options passed to Execute by main.
func arguments(args ...any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v
		case *Options:
			options = v
		}
	}

	return ctx, options
}

// command holds the options common to every command that accesses a spreadsheet.
type command struct {
	credentials string
	spreadsheet string
	url         string
	worksheet   string
	debug       bool
	options     []option.ClientOption
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account 'credentials.json' file")
	flagset.StringVar(&c.spreadsheet, "spreadsheet", c.spreadsheet, "Spreadsheet name e.g. 'My Website Data'")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL. Takes precedence over --spreadsheet")
	flagset.StringVar(&c.worksheet, "worksheet", c.worksheet, "Worksheet title. Defaults to the first worksheet")

	return flagset
}

// configure loads the configuration file and fills in any options not set on the
// command line.
func (c *command) configure(options *Options) (*Config, error) {
	c.debug = options.Debug
	c.options = options.ClientOptions

	conf := NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return nil, fmt.Errorf("could not load configuration (%w)", err)
	}

	if strings.TrimSpace(c.credentials) == "" {
		c.credentials = conf.Google.Credentials
	}

	if strings.TrimSpace(c.spreadsheet) == "" && strings.TrimSpace(c.url) == "" {
		c.spreadsheet = conf.Google.Spreadsheet
		c.url = conf.Google.URL
	}

	if strings.TrimSpace(c.worksheet) == "" {
		c.worksheet = conf.Google.Worksheet
	}

	return conf, nil
}

func (c *command) validate() error {
	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.spreadsheet) == "" && strings.TrimSpace(c.url) == "" {
		return fmt.Errorf("one of --spreadsheet or --url is required")
	}

	if c.url != "" {
		if _, err := session.ParseURL(c.url); err != nil {
			return err
		}
	}

	return nil
}

// name returns the spreadsheet as identified on the command line, for status messages.
func (c *command) name() string {
	if strings.TrimSpace(c.url) != "" {
		return c.url
	}

	return c.spreadsheet
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
