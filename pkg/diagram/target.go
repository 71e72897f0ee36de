package diagram

import "github.com/venndial/venndial/pkg/errors"

// Target describes the desired region statistics a search run optimizes
// toward: how many distinct regions the diagram should have and what the
// distribution of their estimated areas should look like.
//
// Tolerances define the band within which a measured value counts as
// matching; a fitness term is zero inside its band. Immutable once
// constructed.
type Target struct {
	Regions    int     `toml:"regions" json:"regions"`
	MinArea    float64 `toml:"min_area" json:"min_area"`
	MaxArea    float64 `toml:"max_area" json:"max_area"`
	MeanArea   float64 `toml:"mean_area" json:"mean_area"`
	MedianArea float64 `toml:"median_area" json:"median_area"`

	RegionTolerance float64 `toml:"region_tolerance" json:"region_tolerance"`
	AreaTolerance   float64 `toml:"area_tolerance" json:"area_tolerance"`
}

// NewTarget validates the given criteria and returns a Target.
func NewTarget(regions int, minArea, maxArea, meanArea, medianArea, regionTol, areaTol float64) (Target, error) {
	t := Target{
		Regions:         regions,
		MinArea:         minArea,
		MaxArea:         maxArea,
		MeanArea:        meanArea,
		MedianArea:      medianArea,
		RegionTolerance: regionTol,
		AreaTolerance:   areaTol,
	}
	if err := t.Validate(); err != nil {
		return Target{}, err
	}
	return t, nil
}

// Validate checks every invariant of the target criteria.
func (t Target) Validate() error {
	if t.Regions <= 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "target regions must be positive, got %d", t.Regions)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"target min area", t.MinArea},
		{"target max area", t.MaxArea},
		{"target mean area", t.MeanArea},
		{"target median area", t.MedianArea},
	} {
		if f.value <= 0 {
			return errors.New(errors.ErrCodeInvalidTarget, "%s must be positive, got %v", f.name, f.value)
		}
	}
	if err := errors.ValidateTolerance("region tolerance", t.RegionTolerance); err != nil {
		return err
	}
	return errors.ValidateTolerance("area tolerance", t.AreaTolerance)
}
