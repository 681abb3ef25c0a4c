package models

import "encoding/json"

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// DebugEnvReport is the body of GET /api/debug-env.
//
// Secret values are never echoed: they are reported as [EnvSet] or
// [EnvNotSet].
type DebugEnvReport struct {
	NodeEnv               string `json:"NODE_ENV,omitempty"`
	NextAuthURL           string `json:"NEXTAUTH_URL,omitempty"`
	NextAuthSecret        string `json:"NEXTAUTH_SECRET"`
	GoogleClientID        string `json:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret    string `json:"GOOGLE_CLIENT_SECRET"`
	GoogleClientIDPreview string `json:"GOOGLE_CLIENT_ID_PREVIEW"`
}

// Values used by [DebugEnvReport] to describe secret presence.
const (
	EnvSet    = "SET"
	EnvNotSet = "NOT SET"
)

// DBDiagnostics is the body of GET /api/diag/db.
type DBDiagnostics struct {
	OK     bool             `json:"ok"`
	Result []map[string]any `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// MarshalJSON always emits "result" for a successful probe, as an empty
// array when the query returned no rows. Failed probes carry only "error".
func (d DBDiagnostics) MarshalJSON() ([]byte, error) {
	if !d.OK {
		type failed DBDiagnostics
		return json.Marshal(failed(d))
	}

	result := d.Result
	if result == nil {
		result = []map[string]any{}
	}
	return json.Marshal(struct {
		OK     bool             `json:"ok"`
		Result []map[string]any `json:"result"`
	}{OK: true, Result: result})
}

// EnvPresenceReport is the body of GET /api/diag/env.
type EnvPresenceReport struct {
	Present map[string]bool `json:"present"`
	Runtime string          `json:"runtime"`
	NodeEnv string          `json:"nodeEnv,omitempty"`
}

// ConfigReport is the body of GET /api/diag/config. It lists deployment
// problems and a recommendation for each of them.
type ConfigReport struct {
	Status          string            `json:"status"`
	Timestamp       string            `json:"timestamp"`
	Environment     string            `json:"environment,omitempty"`
	Version         string            `json:"version"`
	Env             map[string]string `json:"env"`
	Issues          []string          `json:"issues"`
	Recommendations []string          `json:"recommendations"`
}

// Health status values.
const (
	StatusHealthy            = "healthy"
	StatusNeedsConfiguration = "needs_configuration"
)

// AddIssue records a configuration problem together with its fix.
func (r *ConfigReport) AddIssue(issue, recommendation string) {
	r.Issues = append(r.Issues, issue)
	r.Recommendations = append(r.Recommendations, recommendation)
}
