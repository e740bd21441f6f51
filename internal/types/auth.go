package types

// CandidateAuthResponse is returned by candidate registration and login.
type CandidateAuthResponse struct {
	Token     string    `json:"token"`
	Candidate Candidate `json:"candidate"`
}

// EmployerAuthResponse is returned by employer registration and login.
type EmployerAuthResponse struct {
	Token    string   `json:"token"`
	Employer Employer `json:"employer"`
}
