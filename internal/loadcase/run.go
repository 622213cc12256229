package loadcase

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Result is the outcome of one case. Err is set when the case failed
// validation; the reactions are zero in that case.
type Result struct {
	Case      Case
	Load      statics.Load // nil when the case could not be converted
	Reactions statics.ReactionPair
	Total     float64 // kN
	Err       error
}

// Run validates and solves every case. A failing case is recorded in its
// Result and does not stop the batch.
func Run(cases []Case, logger *slog.Logger) []Result {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		res := Result{Case: c}

		load, err := c.Load.ToLoad()
		if err == nil {
			res.Load = load
			res.Reactions, err = statics.Calculate(c.Length, load)
		}
		if err != nil {
			logger.Warn("case rejected", "index", i, "name", c.Name, "err", err)
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Total = load.Total(c.Length)
		logger.Debug("case solved", "index", i, "name", c.Name,
			"ra", res.Reactions.ReactionA, "rb", res.Reactions.ReactionB)
		results = append(results, res)
	}

	return results
}

// Failed counts results with an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

type jsonResult struct {
	Name      string   `json:"name"`
	Length    float64  `json:"length"`
	Type      string   `json:"type"`
	Magnitude float64  `json:"magnitude"`
	TotalLoad float64  `json:"total_load,omitempty"`
	ReactionA *float64 `json:"reaction_a,omitempty"`
	ReactionB *float64 `json:"reaction_b,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// WriteJSON writes the results as an indented JSON array
func WriteJSON(w io.Writer, results []Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			Name:      r.Case.Name,
			Length:    r.Case.Length,
			Type:      r.Case.Load.Type,
			Magnitude: magnitudeOf(r),
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		} else {
			ra, rb := r.Reactions.ReactionA, r.Reactions.ReactionB
			jr.ReactionA, jr.ReactionB = &ra, &rb
			jr.TotalLoad = r.Total
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// magnitudeOf reports the magnitude actually solved for, which differs
// from the file value when load factors were applied
func magnitudeOf(r Result) float64 {
	if r.Load != nil {
		return statics.Magnitude(r.Load)
	}
	return r.Case.Load.Magnitude
}
