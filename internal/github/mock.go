package github

import (
	"fmt"

	"github.com/ryo246912/gh-pr-release/internal/models"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	CompareHashes  []string
	CompareError   error
	Merged         []models.PullRequest
	MergedError    error
	OpenReleasePRs []models.PullRequest
	ListOpenError  error
	CreatedPR      *models.PullRequest
	CreateError    error
	UpdatedPR      *models.PullRequest
	UpdateError    error
	AddLabelsError error

	// Track method calls
	CompareCommitsCalled     bool
	MergedPullRequestsCalled bool
	ListOpenCalled           bool
	CreateCalled             bool
	UpdateCalled             bool
	AddLabelsCalled          bool

	// Store call arguments for verification
	LastRepo   models.Repository
	LastBase   string
	LastHead   string
	LastHashes []string
	LastNewPR  models.NewPullRequest
	LastNumber int
	LastTitle  string
	LastBody   string
	LastLabels []string
}

// CompareCommits mocks the branch comparison API call
func (m *MockClient) CompareCommits(repo models.Repository, base, head string) ([]string, error) {
	m.CompareCommitsCalled = true
	m.LastRepo = repo
	m.LastBase = base
	m.LastHead = head
	return m.CompareHashes, m.CompareError
}

// MergedPullRequests mocks the closed pull request listing
func (m *MockClient) MergedPullRequests(repo models.Repository, head string, hashes []string) ([]models.PullRequest, error) {
	m.MergedPullRequestsCalled = true
	m.LastRepo = repo
	m.LastHead = head
	m.LastHashes = hashes
	return m.Merged, m.MergedError
}

// ListOpenReleasePRs mocks the open release pull request lookup
func (m *MockClient) ListOpenReleasePRs(repo models.Repository, head, base string) ([]models.PullRequest, error) {
	m.ListOpenCalled = true
	m.LastRepo = repo
	m.LastHead = head
	m.LastBase = base
	return m.OpenReleasePRs, m.ListOpenError
}

// CreatePullRequest mocks pull request creation
func (m *MockClient) CreatePullRequest(repo models.Repository, pr models.NewPullRequest) (*models.PullRequest, error) {
	m.CreateCalled = true
	m.LastRepo = repo
	m.LastNewPR = pr
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	if m.CreatedPR != nil {
		return m.CreatedPR, nil
	}
	return &models.PullRequest{
		Number: 1000,
		Title:  pr.Title,
		Body:   pr.Body,
		URL:    fmt.Sprintf("https://github.com/%s/%s/pull/1000", repo.Owner, repo.Name),
	}, nil
}

// UpdatePullRequest mocks pull request editing
func (m *MockClient) UpdatePullRequest(repo models.Repository, number int, title, body string) (*models.PullRequest, error) {
	m.UpdateCalled = true
	m.LastRepo = repo
	m.LastNumber = number
	m.LastTitle = title
	m.LastBody = body
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	if m.UpdatedPR != nil {
		return m.UpdatedPR, nil
	}
	return &models.PullRequest{
		Number: number,
		Title:  title,
		Body:   body,
		URL:    fmt.Sprintf("https://github.com/%s/%s/pull/%d", repo.Owner, repo.Name, number),
	}, nil
}

// AddLabels mocks the label API call
func (m *MockClient) AddLabels(repo models.Repository, number int, labels []string) error {
	m.AddLabelsCalled = true
	m.LastRepo = repo
	m.LastNumber = number
	m.LastLabels = labels
	return m.AddLabelsError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.CompareCommitsCalled = false
	m.MergedPullRequestsCalled = false
	m.ListOpenCalled = false
	m.CreateCalled = false
	m.UpdateCalled = false
	m.AddLabelsCalled = false
	m.LastRepo = models.Repository{}
	m.LastBase = ""
	m.LastHead = ""
	m.LastHashes = nil
	m.LastNewPR = models.NewPullRequest{}
	m.LastNumber = 0
	m.LastTitle = ""
	m.LastBody = ""
	m.LastLabels = nil
}

// Helper functions for creating test data
func CreateTestPullRequests(count int) []models.PullRequest {
	prs := make([]models.PullRequest, count)
	for i := 0; i < count; i++ {
		prs[i] = models.PullRequest{
			Number:         i + 1,
			Title:          fmt.Sprintf("Test PR #%d", i+1),
			Author:         fmt.Sprintf("user%d", i+1),
			MergeCommitSHA: fmt.Sprintf("sha%d", i+1),
			CreatedAt:      fmt.Sprintf("2023-01-%02dT10:00:00Z", i+1),
			URL:            fmt.Sprintf("https://github.com/owner/repo/pull/%d", i+1),
		}
	}
	return prs
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}
