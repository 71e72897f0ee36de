package io

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/errors"
	"github.com/venndial/venndial/pkg/search"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := diagram.DefaultTriple()

	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig() = %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadConfig() on missing file = nil error, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("width = ["), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() on malformed TOML = nil error, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidFormat)
	}
}

func TestLoadConfigRejectsInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.toml")
	// Well-formed TOML describing an impossible geometry.
	doc := `width = 800
height = 600
dot_spacing = 4.0
dot_size = 2.0

[[circles]]
radius = -10.0
rings = 2

[boundary]
radius = 280.0
rings = 2
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() on invalid geometry = nil error, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidGeometry {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidGeometry)
	}
}

func TestTargetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.toml")
	want := diagram.Target{
		Regions:         24,
		MinArea:         100,
		MaxArea:         8000,
		MeanArea:        1200,
		MedianArea:      900,
		RegionTolerance: 3,
		AreaTolerance:   250,
	}

	if err := SaveTarget(want, path); err != nil {
		t.Fatalf("SaveTarget() = %v", err)
	}
	got, err := LoadTarget(path)
	if err != nil {
		t.Fatalf("LoadTarget() = %v", err)
	}
	if got != want {
		t.Errorf("LoadTarget() = %+v, want %+v", got, want)
	}
}

func TestLoadTargetRejectsInvalidCriteria(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.toml")
	if err := os.WriteFile(path, []byte("regions = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTarget(path)
	if err == nil {
		t.Fatal("LoadTarget() on invalid criteria = nil error, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidTarget {
		t.Errorf("GetCode() = %q, want %q", got, errors.ErrCodeInvalidTarget)
	}
}

func TestBoundsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounds.toml")
	want := search.DefaultBounds()

	if err := SaveBounds(want, path); err != nil {
		t.Fatalf("SaveBounds() = %v", err)
	}
	got, err := LoadBounds(path)
	if err != nil {
		t.Fatalf("LoadBounds() = %v", err)
	}
	if got != want {
		t.Errorf("LoadBounds() = %+v, want %+v", got, want)
	}
}

func TestLoadBoundsRejectsInvalidRanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounds.toml")
	b := search.DefaultBounds()
	b.MaxRadius = b.MinRadius - 1
	if err := SaveBounds(b, path); err != nil {
		t.Fatalf("SaveBounds() = %v", err)
	}

	if _, err := LoadBounds(path); err == nil {
		t.Fatal("LoadBounds() on inverted range = nil error, want error")
	}
}
