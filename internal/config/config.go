package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultTableRows is the results-table page size used when no config
// file overrides it.
const DefaultTableRows = 10

// Defaults holds the front-end defaults. It is built once at startup
// and passed explicitly into the presentation layers; the planner
// itself never sees it.
type Defaults struct {
	// TableRows is the visible row count of the interactive results table.
	TableRows int `toml:"table_rows"`
	// Binary renders addresses as dotted 8-bit binary groups.
	Binary bool `toml:"binary"`
}

// Default returns the compiled-in defaults.
func Default() Defaults {
	return Defaults{TableRows: DefaultTableRows}
}

// DefaultPath returns the per-user config file location,
// $XDG_CONFIG_HOME/subnet-ctl/config.toml or the OS equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate user config dir: %w", err)
	}
	return filepath.Join(dir, "subnet-ctl", "config.toml"), nil
}

// Load reads defaults from the TOML file at path. A missing file is
// not an error and yields Default(); a malformed file or an invalid
// value is.
func Load(path string) (Defaults, error) {
	d := Default()

	if _, err := toml.DecodeFile(path, &d); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Defaults{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return Defaults{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate checks that the Defaults are usable.
func (d Defaults) Validate() error {
	if d.TableRows <= 0 {
		return fmt.Errorf("table_rows must be positive, got %d", d.TableRows)
	}
	return nil
}
