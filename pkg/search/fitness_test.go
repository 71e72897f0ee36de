package search

import (
	"math"
	"testing"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/diagram"
)

func TestFitnessTerm(t *testing.T) {
	tests := []struct {
		name     string
		dev, tol float64
		want     float64
	}{
		{"inside band", 1, 2, 0},
		{"exactly on band edge", 2, 2, 0},
		{"outside band", 6, 2, 3},
		{"zero deviation zero tolerance", 0, 0, 0},
		{"deviation with zero tolerance", 0.1, 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitnessTerm(tt.dev, tt.tol); got != tt.want {
				t.Errorf("fitnessTerm(%v, %v) = %v, want %v", tt.dev, tt.tol, got, tt.want)
			}
		})
	}
}

func TestFitness(t *testing.T) {
	target := diagram.Target{
		Regions:         10,
		MinArea:         100,
		MaxArea:         1000,
		MeanArea:        400,
		MedianArea:      350,
		RegionTolerance: 2,
		AreaTolerance:   50,
	}

	t.Run("all within tolerance", func(t *testing.T) {
		s := analysis.Summary{RegionCount: 11, MinArea: 120, MaxArea: 980, MeanArea: 430, MedianArea: 500}
		if got := Fitness(target, s); got != 0 {
			t.Errorf("Fitness() = %v, want 0", got)
		}
	})

	t.Run("sums normalized deviations", func(t *testing.T) {
		// Regions off by 4 (term 2), min off by 150 (term 3), max and
		// mean within tolerance.
		s := analysis.Summary{RegionCount: 14, MinArea: 250, MaxArea: 1000, MeanArea: 400}
		if got, want := Fitness(target, s), 5.0; math.Abs(got-want) > 1e-9 {
			t.Errorf("Fitness() = %v, want %v", got, want)
		}
	})

	t.Run("median does not score", func(t *testing.T) {
		a := analysis.Summary{RegionCount: 10, MinArea: 100, MaxArea: 1000, MeanArea: 400, MedianArea: 350}
		b := a
		b.MedianArea = 9999
		if Fitness(target, a) != Fitness(target, b) {
			t.Error("Fitness() varies with median area")
		}
	})

	t.Run("zero tolerance mismatch is infinite", func(t *testing.T) {
		strict := target
		strict.RegionTolerance = 0
		s := analysis.Summary{RegionCount: 11, MinArea: 100, MaxArea: 1000, MeanArea: 400}
		if got := Fitness(strict, s); !math.IsInf(got, 1) {
			t.Errorf("Fitness() = %v, want +Inf", got)
		}
	})
}
