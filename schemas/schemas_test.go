package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/resume-wizard/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeSchemaFile = "resume.schema.json"

func TestResumeSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(resumeSchemaFile)
	require.NoError(t, err, "should be able to read schema file")

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
	assert.Contains(t, v, "definitions")
}

func TestResumeSchema_MatchesEmbeddedCopy(t *testing.T) {
	data, err := os.ReadFile(resumeSchemaFile)
	require.NoError(t, err)
	assert.Equal(t, schemas.ResumeSchema, string(data), "schemas/resume.schema.json and the embedded copy have drifted")
}

func TestResumeSchema_CompilesAndAcceptsMinimalDocument(t *testing.T) {
	err := schemas.ValidateJSON(resumeSchemaFile, []byte(`{"personalInfo": {}}`))
	assert.NoError(t, err)
}
