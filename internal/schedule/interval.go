package schedule

// Interval is a contiguous open time range within one day.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
