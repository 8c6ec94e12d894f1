package model

import "time"

// Config is the complete spanscope configuration. Values come from (in
// priority order) CLI flags, SPANSCOPE_* environment variables, the
// config file, and these defaults.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig controls the analyzer itself.
type AnalysisConfig struct {
	// WindowSize is the boundary window: how many tokens on each side of
	// a span edge feed the boundary distinctiveness metric. Minimum 1.
	WindowSize int `yaml:"window_size" mapstructure:"window_size"`
	// DefaultLayer is the span layer assigned by the corpus converters.
	DefaultLayer string `yaml:"default_layer" mapstructure:"default_layer"`
}

// CacheConfig controls the converted-corpus cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts.
type ConcurrencyConfig struct {
	// MetricWorkers bounds the pool computing the four metric tables.
	MetricWorkers int `yaml:"metric_workers" mapstructure:"metric_workers"`
	// BatchWorkers bounds concurrent corpus analyses in batch mode.
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls presentation.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	// Descriptions prints the explanation of each metric above its table.
	Descriptions bool `yaml:"descriptions" mapstructure:"descriptions"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			WindowSize:   1,
			DefaultLayer: "sc",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.spanscope/cache at startup
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			MetricWorkers: 4,
			BatchWorkers:  4,
		},
		Output: OutputConfig{
			Verbose:      false,
			Descriptions: false,
		},
	}
}
