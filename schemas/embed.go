// Package schemas embeds the JSON Schemas that describe the system's
// external documents.
package schemas

import "embed"

// Schema file names.
const (
	ProfileAudit = "profile_audit.schema.json"
	AuditRequest = "audit_request.schema.json"
)

//go:embed *.schema.json
var FS embed.FS

// Read returns the raw content of the named schema.
func Read(name string) ([]byte, error) {
	return FS.ReadFile(name)
}
