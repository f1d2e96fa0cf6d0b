// Package config loads clog sink configuration from YAML.
//
// This package manages:
//   - Loading configuration from YAML files over built-in defaults
//   - Overriding with CLOG_* environment variables
//   - Validation of level, timestamp, style and color names
//   - Building the configured console and file sinks
//
// Usage:
//
//	cfg, err := config.Load("configs/logging.yaml")
//	if err != nil {
//	    return err
//	}
//	log, err := cfg.Build()
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//	clog.SetGlobal(log)
package config
