package io

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/errors"
)

// WriteConfig encodes a configuration as TOML and writes it to w.
func WriteConfig(cfg diagram.Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}

// ReadConfig decodes a TOML configuration from r and validates it.
func ReadConfig(r io.Reader) (diagram.Config, error) {
	var cfg diagram.Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return diagram.Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return diagram.Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes a configuration to a TOML file at path.
func SaveConfig(cfg diagram.Config, path string) error {
	var buf bytes.Buffer
	if err := WriteConfig(cfg, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// LoadConfig reads and validates a TOML configuration file at path.
func LoadConfig(path string) (diagram.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return diagram.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadConfig(f)
}

// WriteTarget encodes target criteria as TOML and writes them to w.
func WriteTarget(t diagram.Target, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode target")
	}
	return nil
}

// ReadTarget decodes TOML target criteria from r and validates them.
func ReadTarget(r io.Reader) (diagram.Target, error) {
	var t diagram.Target
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return diagram.Target{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode target")
	}
	if err := t.Validate(); err != nil {
		return diagram.Target{}, err
	}
	return t, nil
}

// SaveTarget writes target criteria to a TOML file at path.
func SaveTarget(t diagram.Target, path string) error {
	var buf bytes.Buffer
	if err := WriteTarget(t, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// LoadTarget reads and validates a TOML target criteria file at path.
func LoadTarget(path string) (diagram.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return diagram.Target{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadTarget(f)
}
