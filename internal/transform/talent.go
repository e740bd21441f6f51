package transform

import (
	"encoding/json"

	"github.com/talentloop/talentloop-go/internal/types"
)

// talentProfileWire splits the aggregate payload into raw sections so each
// one can be decoded independently. A section missing from the payload stays
// nil in the result.
type talentProfileWire struct {
	Profile        json.RawMessage `json:"profile"`
	Candidate      json.RawMessage `json:"candidate"`
	Completion     json.RawMessage `json:"completion"`
	Interview      json.RawMessage `json:"interview"`
	EmployerStatus json.RawMessage `json:"employer_status"`
}

type candidateSectionWire struct {
	Candidate json.RawMessage `json:"candidate"`
	Resume    json.RawMessage `json:"resume"`
	GitHub    json.RawMessage `json:"github"`
}

// TalentProfile decodes the employer-facing profile aggregate. Sections
// absent from the source yield nil pointers, never partially-populated
// structs.
func TalentProfile(raw []byte) types.TalentProfileDetail {
	var wire talentProfileWire
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &wire)
	}

	var out types.TalentProfileDetail
	out.Profile = profileSummary(wire.Profile)
	out.Candidate = candidateSection(wire.Candidate)
	out.Completion = completionStatus(wire.Completion)
	out.Interview = interviewHighlight(wire.Interview)
	out.EmployerStatus = employerStatus(wire.EmployerStatus)
	return out
}

func profileSummary(raw json.RawMessage) *types.TalentProfileSummary {
	if !present(raw) {
		return nil
	}
	var s types.TalentProfileSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func candidateSection(raw json.RawMessage) *types.CandidateSection {
	if !present(raw) {
		return nil
	}
	var wire candidateSectionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil
	}

	var sec types.CandidateSection
	if present(wire.Candidate) {
		_ = json.Unmarshal(wire.Candidate, &sec.Candidate)
	}
	if sec.Candidate.TargetRoles == nil {
		sec.Candidate.TargetRoles = []string{}
	}
	if present(wire.Resume) {
		resume := Resume(wire.Resume)
		sec.Resume = &resume
	}
	if present(wire.GitHub) {
		github := GitHub(wire.GitHub)
		sec.GitHub = &github
	}
	return &sec
}

func completionStatus(raw json.RawMessage) *types.CompletionStatus {
	if !present(raw) {
		return nil
	}
	var c types.CompletionStatus
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil
	}
	return &c
}

func interviewHighlight(raw json.RawMessage) *types.InterviewHighlight {
	if !present(raw) {
		return nil
	}
	var h types.InterviewHighlight
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil
	}
	if h.Responses == nil {
		h.Responses = []types.ResponseDetail{}
	}
	for i := range h.Responses {
		if d := h.Responses[i].ScoreDetails; d != nil {
			d.Strengths = orEmpty(d.Strengths)
			d.Concerns = orEmpty(d.Concerns)
			d.Quotes = orEmpty(d.Quotes)
		}
	}
	return &h
}

func employerStatus(raw json.RawMessage) *types.EmployerStatus {
	if !present(raw) {
		return nil
	}
	var s types.EmployerStatus
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// present reports whether a raw section carries a usable value. JSON null is
// treated the same as an absent key.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
