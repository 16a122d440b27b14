package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gambitchess/gambit/pkg/uci"
)

// File is an optional YAML document of option overrides applied before
// the host takes over, e.g.:
//
//	options:
//	  Hash: "256"
//	  Threads: "8"
type File struct {
	Options map[string]string `yaml:"options"`
}

func Load(path string) (*File, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Apply pushes the overrides through the regular assignment path, in
// sorted name order so repeated runs behave identically. Unknown names
// are logged and skipped; invalid values fall to the protocol's usual
// silent rejection.
func (f *File) Apply(options *uci.Options, logger *slog.Logger) {
	var names = make([]string, 0, len(f.Options))
	for name := range f.Options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := options.Set(name, f.Options[name]); err != nil {
			logger.Warn("skipping config override", "name", name, "error", err)
		}
	}
}
