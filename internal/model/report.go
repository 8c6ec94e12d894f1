package model

// Report is the serialized analysis artifact. The key names and nesting
// are the interchange format shared with existing tooling and must stay
// stable.
type Report struct {
	Metrics Metrics      `json:"metrics"`
	Config  ReportConfig `json:"config"`
}

// Metrics holds the four metric tables, each keyed by span layer and
// then by span type.
type Metrics struct {
	Frequencies             map[string]map[string]int     `json:"frequencies"`
	Length                  map[string]map[string]float64 `json:"length"`
	SpanDistinctiveness     map[string]map[string]float64 `json:"span_distinctiveness"`
	BoundaryDistinctiveness map[string]map[string]float64 `json:"boundary_distinctiveness"`
}

// ReportConfig records the analysis configuration that shaped the
// metrics.
type ReportConfig struct {
	WindowSize int `json:"window_size"`
}

// Summary is the per-layer frequency-weighted aggregation of the
// per-type metric tables. It is presentation output and deliberately
// kept out of the interchange Report.
type Summary struct {
	Layer                   string  `json:"layer"`
	SpanCount               int     `json:"span_count"`
	Length                  float64 `json:"length"`
	SpanDistinctiveness     float64 `json:"span_distinctiveness"`
	BoundaryDistinctiveness float64 `json:"boundary_distinctiveness"`
}
