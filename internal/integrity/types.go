package integrity

// #region types

// Metric is one named check outcome.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// Result is the outcome of an integrity run.
type Result struct {
	Passed   bool
	Metrics  []Metric
	Warnings []string // non-fatal observations, e.g. locale parity gaps
	Reason   string
}

// #endregion types
