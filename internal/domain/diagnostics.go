package domain

// Severity grades a render diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one non-fatal condition collected while assembling a
// newsletter. Diagnostics travel with the render result so callers and
// tests can assert on failure conditions directly.
type Diagnostic struct {
	Severity   Severity `json:"severity"`
	ModuleID   string   `json:"moduleId,omitempty"`
	ModuleType string   `json:"moduleType,omitempty"`
	Message    string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.ModuleType != "" {
		return string(d.Severity) + " [" + d.ModuleType + "]: " + d.Message
	}
	return string(d.Severity) + ": " + d.Message
}
