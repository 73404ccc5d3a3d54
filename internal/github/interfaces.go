package github

import (
	"github.com/ryo246912/gh-pr-release/internal/models"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	CompareCommits(repo models.Repository, base, head string) ([]string, error)
	MergedPullRequests(repo models.Repository, head string, hashes []string) ([]models.PullRequest, error)
	ListOpenReleasePRs(repo models.Repository, head, base string) ([]models.PullRequest, error)
	CreatePullRequest(repo models.Repository, pr models.NewPullRequest) (*models.PullRequest, error)
	UpdatePullRequest(repo models.Repository, number int, title, body string) (*models.PullRequest, error)
	AddLabels(repo models.Repository, number int, labels []string) error
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
