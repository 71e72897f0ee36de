package io

import (
	"os"
	"reflect"
	"testing"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/search"
)

func sampleResult(t *testing.T) search.Result {
	t.Helper()
	cfg := diagram.DefaultTriple()
	return search.Result{
		RunID:     "run-123",
		Config:    cfg,
		Metrics:   analysis.Analyze(cfg),
		Fitness:   1.25,
		Iteration: 42,
		Phase:     search.PhaseRefinement,
	}
}

func TestNewRecord(t *testing.T) {
	res := sampleResult(t)
	rec := NewRecord(res, 7)

	if rec.RunID != res.RunID {
		t.Errorf("RunID = %q, want %q", rec.RunID, res.RunID)
	}
	if rec.Fitness != res.Fitness {
		t.Errorf("Fitness = %v, want %v", rec.Fitness, res.Fitness)
	}
	if rec.Iteration != res.Iteration {
		t.Errorf("Iteration = %d, want %d", rec.Iteration, res.Iteration)
	}
	if rec.Phase != string(search.PhaseRefinement) {
		t.Errorf("Phase = %q, want %q", rec.Phase, search.PhaseRefinement)
	}
	if rec.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rec.Seed)
	}
	if rec.Summary != res.Metrics.Summary() {
		t.Errorf("Summary = %+v, want %+v", rec.Summary, res.Metrics.Summary())
	}
}

func TestResultExportRoundTrip(t *testing.T) {
	rec := NewRecord(sampleResult(t), 7)
	path := t.TempDir() + "/result.json"

	if err := ExportResult(rec, path); err != nil {
		t.Fatalf("ExportResult() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := ReadResult(f)
	if err != nil {
		t.Fatalf("ReadResult() = %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("ReadResult() = %+v, want %+v", got, rec)
	}
}
