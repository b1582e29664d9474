package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/growth-audit/internal/transform"
	"github.com/jonathan/growth-audit/internal/types"
	embedded "github.com/jonathan/growth-audit/schemas"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {"name": {"type": "string"}, "age": {"type": "integer"}}
}`

func validateString(schema, document string) error {
	return validate("(test schema)", gojsonschema.NewStringLoader(schema), gojsonschema.NewStringLoader(document))
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validateString(testSchema, `{"name": "Ada", "age": 36}`))
}

func TestValidate_MissingField(t *testing.T) {
	err := validateString(testSchema, `{"age": 36}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Error(), "validation failed")
}

func TestValidate_WrongType(t *testing.T) {
	err := validateString(testSchema, `{"name": "Ada", "age": "old"}`)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "age", validationErr.Errors[0].Field)
}

func TestValidate_BadSchema(t *testing.T) {
	err := validateString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidateAudit_Placeholder(t *testing.T) {
	audit := transform.Placeholder(types.PlatformTwitter, "Grace", "https://x.com/grace")
	assert.NoError(t, ValidateAudit(audit))
}

func TestValidateAudit_RequiresAvgReplyTime(t *testing.T) {
	audit := transform.Placeholder(types.PlatformTwitter, "Grace", "https://x.com/grace")
	data, err := json.Marshal(audit)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"avgReplyTime":"n/a"`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	delete(doc["engagement"].(map[string]any), "avgReplyTime")
	stripped, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Error(t, ValidateEmbedded(embedded.ProfileAudit, stripped))
}

func TestValidateAudit_OutOfRangeScore(t *testing.T) {
	audit := transform.Placeholder(types.PlatformLinkedIn, "Ada", "https://linkedin.com/in/ada")
	audit.OverallScore = 150
	audit.Breakdown[0].Score = -1

	err := ValidateAudit(audit)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateAuditFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"platform": "myspace"}`), 0644))

	err := ValidateAuditFile(path)
	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")

	err = ValidateAuditFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateEmbedded_AuditRequest(t *testing.T) {
	assert.NoError(t, ValidateEmbedded(embedded.AuditRequest, []byte(`{"platform": "linkedin", "posts": []}`)))
	assert.Error(t, ValidateEmbedded(embedded.AuditRequest, []byte(`{"platform": "linkedin"}`)))

	_, ok := ValidateEmbedded("nope.schema.json", []byte(`{}`)).(*SchemaLoadError)
	assert.True(t, ok)
}
