package app

import "errors"

// Config holds everything an App instance needs to run one computation.
type Config struct {
	// GraphPath is a .json or .hcl graph description file, or a directory
	// of .hcl files.
	GraphPath string
	// Target is the node to compute, optionally "<id>:<n>". When empty,
	// the description's own target_node is used.
	Target string
	// Feed maps placeholder ids to their runtime values.
	Feed map[string]string
	// Strategy is one of "auto", "recursive", "iterative", "parallel".
	Strategy string

	LogFormat string
	LogLevel  string
	// OpsPort serves /health, /metrics, and /execute when positive.
	OpsPort int
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "auto"
	}
	switch cfg.Strategy {
	case "auto", "recursive", "iterative", "parallel":
	default:
		return nil, errors.New("Strategy must be one of 'auto', 'recursive', 'iterative', or 'parallel'")
	}
	return &cfg, nil
}
