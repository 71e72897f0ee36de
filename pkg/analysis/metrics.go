package analysis

import (
	"encoding/json"
	"maps"
	"slices"
	"sort"
)

// RegionDetail is the measured record of a single region.
type RegionDetail struct {
	Signature string  `json:"signature"`
	Points    int     `json:"points"`
	Area      float64 `json:"area"`
}

// Summary is the aggregate statistics over all per-region area
// estimates. All fields are zero for an empty canvas.
type Summary struct {
	RegionCount int     `json:"region_count"`
	TotalPoints int     `json:"total_points"`
	MinArea     float64 `json:"min_area"`
	MaxArea     float64 `json:"max_area"`
	MeanArea    float64 `json:"mean_area"`
	MedianArea  float64 `json:"median_area"`
}

// Metrics is the immutable, queryable result of one analysis pass.
// Produced by Analyze; never mutated afterward.
type Metrics struct {
	regions map[string]RegionDetail
	summary Summary
}

// newMetrics aggregates per-signature point counts into region details
// and summary statistics. cellArea is the nominal area of one grid cell.
func newMetrics(counts map[string]int, totalPoints int, cellArea float64) Metrics {
	regions := make(map[string]RegionDetail, len(counts))
	areas := make([]float64, 0, len(counts))
	for sig, n := range counts {
		area := float64(n) * cellArea
		regions[sig] = RegionDetail{Signature: sig, Points: n, Area: area}
		areas = append(areas, area)
	}
	sort.Float64s(areas)

	summary := Summary{
		RegionCount: len(regions),
		TotalPoints: totalPoints,
	}
	if len(areas) > 0 {
		summary.MinArea = areas[0]
		summary.MaxArea = areas[len(areas)-1]
		summary.MeanArea = mean(areas)
		summary.MedianArea = median(areas)
	}

	return Metrics{regions: regions, summary: summary}
}

// Summary returns the aggregate statistics of the analysis.
func (m Metrics) Summary() Summary {
	return m.summary
}

// RegionCount returns the number of distinct regions sampled.
func (m Metrics) RegionCount() int {
	return m.summary.RegionCount
}

// TotalPoints returns the number of grid points sampled.
func (m Metrics) TotalPoints() int {
	return m.summary.TotalPoints
}

// Region looks up the detail record for one region signature.
// An unknown signature is a normal query outcome, reported via the
// boolean, not an error.
func (m Metrics) Region(signature string) (RegionDetail, bool) {
	d, ok := m.regions[signature]
	return d, ok
}

// Regions returns every region detail, ordered by signature for
// deterministic iteration.
func (m Metrics) Regions() []RegionDetail {
	details := make([]RegionDetail, 0, len(m.regions))
	for _, sig := range slices.Sorted(maps.Keys(m.regions)) {
		details = append(details, m.regions[sig])
	}
	return details
}

// metricsJSON is the serialized form of Metrics, used for caching.
type metricsJSON struct {
	Regions []RegionDetail `json:"regions"`
	Summary Summary        `json:"summary"`
}

// MarshalJSON serializes the metrics with regions in signature order.
func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricsJSON{Regions: m.Regions(), Summary: m.summary})
}

// UnmarshalJSON rebuilds metrics from their serialized form.
func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw metricsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.regions = make(map[string]RegionDetail, len(raw.Regions))
	for _, d := range raw.Regions {
		m.regions[d.Signature] = d
	}
	m.summary = raw.Summary
	return nil
}

// mean requires a non-empty slice.
func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// median requires a sorted, non-empty slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
