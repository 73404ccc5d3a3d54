package models

// Repository identifies a GitHub repository
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// PullRequest represents the pull request metadata this tool needs
type PullRequest struct {
	Number         int
	Title          string
	Author         string
	MergeCommitSHA string
	CreatedAt      string
	URL            string
	Body           string
}

// NewPullRequest is the payload for creating a pull request
type NewPullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
}
