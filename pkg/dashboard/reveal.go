package dashboard

import "iter"

// Frame is one step of the time-series reveal.
type Frame struct {
	// Step is 1-based.
	Step  int   `json:"step"`
	Total int   `json:"total"`
	Point Point `json:"point"`
	// Progress is Step/Total.
	Progress float64 `json:"progress"`
	// Cumulative is the running sum of revealed values.
	Cumulative float64 `json:"cumulative"`
	// Revealed is the prefix of the series shown so far.
	Revealed []Point `json:"-"`
}

// Reveal returns a lazy sequence of frames, one per point. Every range
// over the sequence starts from the first point. It carries no timing:
// presenters decide how long each frame stays on screen.
func (ts TimeSeries) Reveal() iter.Seq[Frame] {
	pts := ts.Points
	return func(yield func(Frame) bool) {
		var cum float64
		total := len(pts)
		for i, p := range pts {
			cum += p.Value
			f := Frame{
				Step:       i + 1,
				Total:      total,
				Point:      p,
				Progress:   float64(i+1) / float64(total),
				Cumulative: cum,
				Revealed:   pts[:i+1:i+1],
			}
			if !yield(f) {
				return
			}
		}
	}
}
