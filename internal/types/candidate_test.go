package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCandidateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterCandidateRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: RegisterCandidateRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "password123",
				Phone:    "+14155550123",
			},
			wantErr: false,
		},
		{
			name: "valid request without phone",
			request: RegisterCandidateRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: RegisterCandidateRequest{
				Email:    "dana@example.com",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: RegisterCandidateRequest{
				Name:     "Dana Smith",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: RegisterCandidateRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "phone not in international format",
			request: RegisterCandidateRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "password123",
				Phone:    "555-0100",
			},
			wantErr: true,
			errMsg:  "e164",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdateCandidateRequest_Validation(t *testing.T) {
	badGPA := 4.7
	goodGPA := 3.6
	badPhone := "call me"

	tests := []struct {
		name    string
		request UpdateCandidateRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty update is valid",
			request: UpdateCandidateRequest{},
			wantErr: false,
		},
		{
			name:    "gpa in range",
			request: UpdateCandidateRequest{GPA: &goodGPA},
			wantErr: false,
		},
		{
			name:    "gpa above scale",
			request: UpdateCandidateRequest{GPA: &badGPA},
			wantErr: true,
			errMsg:  "lte",
		},
		{
			name:    "malformed phone",
			request: UpdateCandidateRequest{Phone: &badPhone},
			wantErr: true,
			errMsg:  "e164",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdateCandidateRequest_OmitsUnsetFields(t *testing.T) {
	name := "Dana Smith"
	data, err := json.Marshal(UpdateCandidateRequest{Name: &name})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "Dana Smith"}`, string(data))
}

func TestCandidate_WireFieldNames(t *testing.T) {
	payload := `{
		"id": "7b0d9aab-5af5-4d8a-9a0c-1f63914c8a2e",
		"name": "Dana Smith",
		"email": "dana@example.com",
		"target_roles": ["Backend Engineer"],
		"github_username": "danasmith",
		"graduation_year": 2024,
		"created_at": "2026-01-05T10:00:00Z"
	}`

	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, "Dana Smith", c.Name)
	assert.Equal(t, []string{"Backend Engineer"}, c.TargetRoles)
	assert.Equal(t, "danasmith", c.GitHubUsername)
	assert.Equal(t, 2024, c.GraduationYear)
}
