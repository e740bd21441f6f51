package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

func TestCreateJobRequest_Validation(t *testing.T) {
	negativeSalary := -1

	tests := []struct {
		name    string
		request CreateJobRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: CreateJobRequest{
				Title:       "Backend Engineer",
				Description: "Build the interview pipeline.",
				Vertical:    VerticalSoftware,
				RoleType:    "Backend",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			request: CreateJobRequest{
				Description: "Build the interview pipeline.",
				Vertical:    VerticalSoftware,
				RoleType:    "Backend",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "missing vertical",
			request: CreateJobRequest{
				Title:       "Backend Engineer",
				Description: "Build the interview pipeline.",
				RoleType:    "Backend",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "negative salary",
			request: CreateJobRequest{
				Title:       "Backend Engineer",
				Description: "Build the interview pipeline.",
				Vertical:    VerticalSoftware,
				RoleType:    "Backend",
				SalaryMin:   &negativeSalary,
			},
			wantErr: true,
			errMsg:  "gte",
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

func TestCreateInviteRequest_Validation(t *testing.T) {
	valid := CreateInviteRequest{JobID: mustUUID(t), MaxUses: 5}
	require.NoError(t, valid.Validate())

	zeroUses := CreateInviteRequest{JobID: mustUUID(t), MaxUses: 0}
	err := zeroUses.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gte")
}
