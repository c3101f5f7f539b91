// Package config loads framing policy for the fixwire tools from TOML
// files and converts it into library options.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/danmuck/fixwire"
)

type fileConfig struct {
	Separator       string `toml:"separator"`
	VerifyChecksum  bool   `toml:"verify_checksum"`
	MaxMessageBytes int    `toml:"max_message_bytes"`
}

// Load reads a TOML policy file and returns the options it defines. Keys
// absent from the file keep the library defaults.
func Load(path string) ([]fixwire.Option, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, errors.Wrapf(err, "load framing config %s", path)
	}

	var opts []fixwire.Option
	if meta.IsDefined("separator") {
		sep, err := SeparatorByte(raw.Separator)
		if err != nil {
			return nil, errors.Wrapf(err, "framing config %s", path)
		}
		opts = append(opts, fixwire.WithSeparator(sep))
	}
	if meta.IsDefined("verify_checksum") {
		opts = append(opts, fixwire.WithChecksumVerification(raw.VerifyChecksum))
	}
	if meta.IsDefined("max_message_bytes") {
		if raw.MaxMessageBytes < 0 {
			return nil, errors.Errorf("framing config %s: max_message_bytes must not be negative", path)
		}
		opts = append(opts, fixwire.WithMaxMessageBytes(raw.MaxMessageBytes))
	}
	return opts, nil
}
