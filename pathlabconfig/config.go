package pathlabconfig

import "fmt"

// Config is pathlab's complete run configuration: process identity, logging,
// and the benchmark defaults a CLI invocation can omit.
type Config struct {
	App   AppConfig   `koanf:"app"`
	Log   LogConfig   `koanf:"log"`
	Bench BenchConfig `koanf:"bench"`
}

// AppConfig identifies the running process, mirrored into log attributes.
type AppConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"`
	Debug       bool   `koanf:"debug"`
}

// LogConfig mirrors obslog.Config's fields so a loaded Config can be handed
// straight to obslog.InitWithConfig without field-by-field translation.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Output string `koanf:"output"`

	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// BenchConfig supplies the defaults bench_single falls back to for any CLI
// argument left unset (only map/scen/pq/cases are mandatory on the command
// line per spec.md's CLI shape; allow_diag and stoc_block are optional).
type BenchConfig struct {
	PQ         string `koanf:"pq"`          // heap, bucket, or stoc
	AllowDiag  bool   `koanf:"allow_diag"`  // 4- vs 8-connectivity
	StocBlock  int    `koanf:"stoc_block"`  // STOCPQ block size
	MaxCases   int    `koanf:"max_cases"`   // 0 means "all cases in the .scen file"
	MetricsTag string `koanf:"metrics_tag"` // metrics label; loaded and defaulted, not read by bench_single or pathlabmetrics
}

// Validate rejects a Config that cannot drive a benchmark run.
func (c *Config) Validate() error {
	switch c.Bench.PQ {
	case "heap", "bucket", "stoc":
	default:
		return fmt.Errorf("pathlabconfig: bench.pq must be heap, bucket, or stoc, got %q", c.Bench.PQ)
	}
	if c.Bench.StocBlock <= 0 {
		return fmt.Errorf("pathlabconfig: bench.stoc_block must be positive, got %d", c.Bench.StocBlock)
	}
	if c.Bench.MaxCases < 0 {
		return fmt.Errorf("pathlabconfig: bench.max_cases must be non-negative, got %d", c.Bench.MaxCases)
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file":
	default:
		return fmt.Errorf("pathlabconfig: log.output must be stdout, stderr, or file, got %q", c.Log.Output)
	}
	return nil
}

// IsDevelopment reports whether the process is configured for a development
// environment, where e.g. debug-level logging and source attribution make
// sense by default.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
