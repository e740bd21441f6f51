// Package transform converts loose backend JSON into fully-typed aggregates.
// Every function here is total: malformed or partially-populated input
// degrades to zero values and empty collections instead of returning an
// error. List-typed fields in the results are never nil.
package transform

import (
	"encoding/json"

	"github.com/talentloop/talentloop-go/internal/types"
)

// Resume decodes a parsed-resume payload. Absent list fields become empty
// slices so callers can range without nil checks.
func Resume(raw []byte) types.ParsedResumeData {
	var out types.ParsedResumeData
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}

	out.Skills = orEmpty(out.Skills)
	out.Languages = orEmpty(out.Languages)
	out.Certifications = orEmpty(out.Certifications)

	if out.Experience == nil {
		out.Experience = []types.ExperienceEntry{}
	}
	for i := range out.Experience {
		out.Experience[i].Highlights = orEmpty(out.Experience[i].Highlights)
	}

	if out.Education == nil {
		out.Education = []types.EducationEntry{}
	}

	if out.Projects == nil {
		out.Projects = []types.Project{}
	}
	for i := range out.Projects {
		out.Projects[i].Technologies = orEmpty(out.Projects[i].Technologies)
	}

	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
