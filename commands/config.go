package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

// Config is the optional TOML configuration file. Values given on the command line
// take precedence.
type Config struct {
	Google GoogleConfig `toml:"google"`
	Demo   DemoConfig   `toml:"demo"`
}

type GoogleConfig struct {
	Credentials string `toml:"credentials"`
	Spreadsheet string `toml:"spreadsheet"`
	URL         string `toml:"url"`
	Worksheet   string `toml:"worksheet"`
}

// DemoConfig holds the values used by the 'demo' command.
type DemoConfig struct {
	Append []string     `toml:"append"`
	Find   string       `toml:"find"`
	Update UpdateConfig `toml:"update"`
}

type UpdateConfig struct {
	Row   int    `toml:"row"`
	Col   int    `toml:"col"`
	Value string `toml:"value"`
}

func NewConfig() *Config {
	return &Config{
		Google: GoogleConfig{
			Credentials: DEFAULT_CREDENTIALS,
			Spreadsheet: "My Website Data",
		},
		Demo: DemoConfig{
			Append: []string{"Vikas", "vikas@gmail.com", "Buyer"},
			Find:   "vikas@gmail.com",
			Update: UpdateConfig{
				Row:   2,
				Col:   3,
				Value: "Seller",
			},
		},
	}
}

// Load reads the configuration from a TOML file, expanding ${VAR} environment
// variables. A missing default configuration file is not an error.
func (c *Config) Load(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DEFAULT_CONFIG {
			return nil
		}

		return err
	}

	if _, err := toml.Decode(expand(string(bytes)), c); err != nil {
		return fmt.Errorf("error parsing %s (%w)", path, err)
	}

	return c.validate()
}

func (c *Config) validate() error {
	if c.Google.URL != "" {
		if _, err := session.ParseURL(c.Google.URL); err != nil {
			return fmt.Errorf("invalid google.url '%s'", c.Google.URL)
		}
	}

	if c.Demo.Update.Row < 1 || c.Demo.Update.Col < 1 {
		return fmt.Errorf("invalid demo.update cell (%v,%v) - row and column start at 1", c.Demo.Update.Row, c.Demo.Update.Col)
	}

	return nil
}

func expand(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}"))
	})
}
