package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/search"
)

// ResultRecord is the exportable form of one search result: everything
// an external reporting collaborator needs to render tabular or visual
// output without re-running analysis.
type ResultRecord struct {
	RunID     string           `json:"run_id" bson:"run_id"`
	Config    diagram.Config   `json:"config" bson:"config"`
	Summary   analysis.Summary `json:"summary" bson:"summary"`
	Fitness   float64          `json:"fitness" bson:"fitness"`
	Iteration int              `json:"iteration" bson:"iteration"`
	Phase     string           `json:"phase" bson:"phase"`
	Seed      uint64           `json:"seed" bson:"seed"`
}

// NewRecord builds the export record for a search result.
func NewRecord(res search.Result, seed uint64) ResultRecord {
	return ResultRecord{
		RunID:     res.RunID,
		Config:    res.Config,
		Summary:   res.Metrics.Summary(),
		Fitness:   res.Fitness,
		Iteration: res.Iteration,
		Phase:     string(res.Phase),
		Seed:      seed,
	}
}

// WriteResult encodes a result record as indented JSON and writes it to w.
func WriteResult(rec ResultRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes a result record to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func ExportResult(rec ResultRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(rec, f)
}

// ReadResult decodes a result record from r.
func ReadResult(r io.Reader) (ResultRecord, error) {
	var rec ResultRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return ResultRecord{}, fmt.Errorf("decode: %w", err)
	}
	return rec, nil
}
