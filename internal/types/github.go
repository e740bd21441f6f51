package types

// GitHubData is the backend's aggregated view of a linked GitHub account.
type GitHubData struct {
	Username           string         `json:"username"`
	ProfileURL         string         `json:"profile_url,omitempty"`
	AvatarURL          string         `json:"avatar_url,omitempty"`
	PublicRepos        int            `json:"public_repos"`
	Followers          int            `json:"followers"`
	Following          int            `json:"following"`
	Repos              []RepoSummary  `json:"repos"`
	Languages          map[string]int `json:"languages"`
	TotalContributions *int           `json:"total_contributions,omitempty"`
}

// RepoSummary is one repository in the candidate's GitHub data.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}
