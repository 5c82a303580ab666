package config

import (
	"fmt"
	"strings"
)

// ValidationResult holds validation results
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(format string, args ...interface{}) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning to the validation result
func (vr *ValidationResult) AddWarning(format string, args ...interface{}) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any errors
func (vr *ValidationResult) HasErrors() bool {
	return !vr.Valid || len(vr.Errors) > 0
}

// Error returns a formatted error message
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Configuration validation failed:\n")
	for _, err := range vr.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err))
	}

	if len(vr.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warn := range vr.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn))
		}
	}

	return sb.String()
}

// Validate checks the configuration for values that would make every
// query fail. Unknown logging settings only warn; the logger falls back
// to its defaults.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	c.validateRepo(result)
	c.validateAnalysis(result)
	c.validateLogging(result)

	return result
}

func (c *Config) validateRepo(result *ValidationResult) {
	if c.Repo.Path == "" {
		result.AddError("repo.path must not be empty (use \".\" for the current directory)")
	}

	if c.Repo.GitPath == "" {
		result.AddError("repo.git_path must not be empty")
	}

	if c.Repo.CommandTimeout < 0 {
		result.AddError("repo.command_timeout must not be negative, got %s", c.Repo.CommandTimeout)
	}
}

func (c *Config) validateAnalysis(result *ValidationResult) {
	if c.Analysis.HistoryLimit <= 0 {
		result.AddError("analysis.history_limit must be positive, got %d", c.Analysis.HistoryLimit)
	}

	if c.Analysis.RelatedLimit <= 0 {
		result.AddError("analysis.related_limit must be positive, got %d", c.Analysis.RelatedLimit)
	}
}

func (c *Config) validateLogging(result *ValidationResult) {
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		result.AddWarning("logging.level %q is not recognized, will use info", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		result.AddWarning("logging.format %q is not recognized, will use text", c.Logging.Format)
	}
}
