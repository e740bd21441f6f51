package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/talentloop/talentloop-go/internal/schemas"
)

var schemaFiles = []string{
	"candidate.schema.json",
	"job.schema.json",
	"interview_session.schema.json",
	"talent_profile.schema.json",
	"invite.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + absPath)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestCandidatePayload_MatchesSchema(t *testing.T) {
	payload := []byte(`{
		"name": "Dana Smith",
		"email": "dana@example.com",
		"target_roles": ["Backend Engineer"],
		"graduation_year": 2024,
		"gpa": 3.6
	}`)

	err := schemas.ValidateBytes("candidate.schema.json", payload)
	assert.NoError(t, err)
}

func TestCandidatePayload_MissingNameFails(t *testing.T) {
	payload := []byte(`{"email": "dana@example.com"}`)

	err := schemas.ValidateBytes("candidate.schema.json", payload)
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestInterviewSessionPayload_MatchesSchema(t *testing.T) {
	payload := []byte(`{
		"status": "COMPLETED",
		"is_practice": false,
		"total_score": 7.8,
		"job_id": null,
		"responses": [
			{
				"question_index": 0,
				"question_text": "Walk me through a system you designed.",
				"ai_score": 8.2,
				"score_details": {"overall": 8.2, "communication": 7.9, "strengths": ["clear structure"]}
			}
		]
	}`)

	err := schemas.ValidateBytes("interview_session.schema.json", payload)
	assert.NoError(t, err)
}

func TestInterviewSessionPayload_ScoreOutOfRangeFails(t *testing.T) {
	payload := []byte(`{"status": "COMPLETED", "is_practice": false, "total_score": 11.2}`)

	err := schemas.ValidateBytes("interview_session.schema.json", payload)
	assert.Error(t, err)
}

func TestTalentProfilePayload_SectionsOptional(t *testing.T) {
	err := schemas.ValidateBytes("talent_profile.schema.json", []byte(`{}`))
	assert.NoError(t, err)

	err = schemas.ValidateBytes("talent_profile.schema.json", []byte(`{"employer_status": {"status": "SHORTLISTED"}}`))
	assert.NoError(t, err)

	err = schemas.ValidateBytes("talent_profile.schema.json", []byte(`{"employer_status": {"status": "PROMOTED"}}`))
	assert.Error(t, err)
}
