package io

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/venndial/venndial/pkg/errors"
	"github.com/venndial/venndial/pkg/search"
)

// LoadBounds reads and validates a TOML parameter-bounds file at path.
func LoadBounds(path string) (search.Bounds, error) {
	var b search.Bounds
	if _, err := toml.DecodeFile(path, &b); err != nil {
		if os.IsNotExist(err) {
			return search.Bounds{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return search.Bounds{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode bounds")
	}
	if err := b.Validate(); err != nil {
		return search.Bounds{}, err
	}
	return b, nil
}

// SaveBounds writes parameter bounds to a TOML file at path.
func SaveBounds(b search.Bounds, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(b); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode bounds")
	}
	return nil
}
