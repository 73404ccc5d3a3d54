package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ryo246912/gh-pr-release/internal/github"
	"github.com/ryo246912/gh-pr-release/internal/models"
	"github.com/ryo246912/gh-pr-release/internal/ui"
)

// ErrAmbiguousReleasePR is returned when more than one open pull request
// already spans the head/base pair
var ErrAmbiguousReleasePR = errors.New("multiple open release pull requests found")

const titleTimeFormat = "2006-01-02 15:04:05 -0700"

// ReleaseService contains the business logic
type ReleaseService struct {
	client   github.GitHubClient
	reporter ui.Reporter
	prompter ui.Prompter
	now      func() time.Time
}

// ReleaseOptions carries the per-run parameters
type ReleaseOptions struct {
	Repo    models.Repository
	Head    string
	Base    string
	Labels  []string
	Confirm bool
}

// NewReleaseService creates a new service instance
func NewReleaseService(client github.GitHubClient, reporter ui.Reporter, prompter ui.Prompter) *ReleaseService {
	return &ReleaseService{
		client:   client,
		reporter: reporter,
		prompter: prompter,
		now:      time.Now,
	}
}

// Process runs one reconciliation: detect merged pull requests, find the
// existing release pull request and create or update it. Rerunning is
// always safe, the description merge is idempotent.
func (s *ReleaseService) Process(opts ReleaseOptions) error {
	hashes, err := s.client.CompareCommits(opts.Repo, opts.Base, opts.Head)
	if err != nil {
		return fmt.Errorf("failed to compare branches: %w", err)
	}
	if len(hashes) == 0 {
		s.reporter.Infof("No commits between %s and %s", opts.Base, opts.Head)
		return nil
	}

	merged, err := s.mergedPullRequests(opts, hashes)
	if err != nil {
		return err
	}
	if len(merged) == 0 {
		// Commits exist but none came in through a pull request
		s.reporter.Warnf("No merged pull requests found between %s and %s", opts.Base, opts.Head)
		return nil
	}
	for _, pr := range merged {
		s.reporter.Infof("To be released: %s", ui.FormatReleaseItem(pr))
	}

	releasePR, err := s.releasePullRequest(opts)
	if err != nil {
		return err
	}

	if opts.Confirm {
		verb := "Create"
		if releasePR != nil {
			verb = "Update"
		}
		ok, err := s.prompter.ConfirmRelease(fmt.Sprintf("%s release pull request with %d items", verb, len(merged)))
		if err != nil {
			return fmt.Errorf("failed to confirm release: %w", err)
		}
		if !ok {
			s.reporter.Infof("Release cancelled")
			return nil
		}
	}

	title := fmt.Sprintf("Release %s", s.now().Format(titleTimeFormat))
	var result *models.PullRequest
	if releasePR == nil {
		result, err = s.client.CreatePullRequest(opts.Repo, models.NewPullRequest{
			Title: title,
			Body:  Description(merged, ""),
			Head:  opts.Head,
			Base:  opts.Base,
		})
		if err != nil {
			return fmt.Errorf("failed to create release pull request: %w", err)
		}
		s.reporter.Infof("Created pull request: %s", result.URL)
	} else {
		result, err = s.client.UpdatePullRequest(opts.Repo, releasePR.Number, title, Description(merged, releasePR.Body))
		if err != nil {
			return fmt.Errorf("failed to update release pull request: %w", err)
		}
		s.reporter.Infof("Updated pull request: %s", result.URL)
	}

	if len(opts.Labels) > 0 {
		if err := s.client.AddLabels(opts.Repo, result.Number, opts.Labels); err != nil {
			return fmt.Errorf("failed to add labels: %w", err)
		}
	}
	return nil
}

// mergedPullRequests finds the pull requests whose merge commit is among
// hashes, oldest-created-first and deduplicated by number
func (s *ReleaseService) mergedPullRequests(opts ReleaseOptions, hashes []string) ([]models.PullRequest, error) {
	prs, err := s.client.MergedPullRequests(opts.Repo, opts.Head, hashes)
	if err != nil {
		return nil, fmt.Errorf("failed to find merged pull requests: %w", err)
	}

	// The listing is newest-created-first, flip it for a stable oldest-first
	// description
	seen := make(map[int]bool, len(prs))
	merged := make([]models.PullRequest, 0, len(prs))
	for i := len(prs) - 1; i >= 0; i-- {
		pr := prs[i]
		if seen[pr.Number] {
			continue
		}
		seen[pr.Number] = true
		merged = append(merged, pr)
	}
	return merged, nil
}

// releasePullRequest locates the single open pull request from head into
// base, nil when none exists
func (s *ReleaseService) releasePullRequest(opts ReleaseOptions) (*models.PullRequest, error) {
	prs, err := s.client.ListOpenReleasePRs(opts.Repo, opts.Head, opts.Base)
	if err != nil {
		return nil, fmt.Errorf("failed to find release pull request: %w", err)
	}
	switch len(prs) {
	case 0:
		return nil, nil
	case 1:
		return &prs[0], nil
	default:
		return nil, fmt.Errorf("%w: %d open pull requests from %s into %s",
			ErrAmbiguousReleasePR, len(prs), opts.Head, opts.Base)
	}
}
