package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/ryo246912/gh-pr-release/internal/models"
)

const perPage = 100

// Client wraps GitHub API clients
type Client struct {
	rest api.RESTClient
	gql  api.GraphQLClient
}

// NewClient builds REST and GraphQL clients authenticated with token
func NewClient(token string) (*Client, error) {
	opts := api.ClientOptions{AuthToken: token}

	restClient, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	gqlClient, err := api.NewGraphQLClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{
		rest: *restClient,
		gql:  *gqlClient,
	}, nil
}

// restPullRequest mirrors the fields we care about from the REST pulls API
type restPullRequest struct {
	Number         int    `json:"number"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	MergeCommitSHA string `json:"merge_commit_sha"`
	CreatedAt      string `json:"created_at"`
	HTMLURL        string `json:"html_url"`
	User           struct {
		Login string `json:"login"`
	} `json:"user"`
}

func (r restPullRequest) toModel() models.PullRequest {
	return models.PullRequest{
		Number:         r.Number,
		Title:          r.Title,
		Author:         r.User.Login,
		MergeCommitSHA: r.MergeCommitSHA,
		CreatedAt:      r.CreatedAt,
		URL:            r.HTMLURL,
		Body:           r.Body,
	}
}

// CompareCommits returns the hashes of every commit contained in head but
// not in base, consuming all pages of the comparison
func (c *Client) CompareCommits(repo models.Repository, base, head string) ([]string, error) {
	var hashes []string
	for page := 1; ; page++ {
		path := fmt.Sprintf("repos/%s/%s/compare/%s...%s?per_page=%d&page=%d",
			repo.Owner, repo.Name, url.PathEscape(base), url.PathEscape(head), perPage, page)

		var comparison struct {
			TotalCommits int `json:"total_commits"`
			Commits      []struct {
				SHA string `json:"sha"`
			} `json:"commits"`
		}
		if err := c.rest.Get(path, &comparison); err != nil {
			return nil, fmt.Errorf("failed to compare %s...%s: %w", base, head, err)
		}

		for _, commit := range comparison.Commits {
			hashes = append(hashes, commit.SHA)
		}
		if len(comparison.Commits) == 0 || len(hashes) >= comparison.TotalCommits {
			return hashes, nil
		}
	}
}

// MergedPullRequests lists closed pull requests whose base is head (feature
// work merged into the integration branch) and keeps those whose merge
// commit appears in hashes. Results come back newest-created-first, the
// API's sort order. Paging stops as soon as every hash is accounted for.
func (c *Client) MergedPullRequests(repo models.Repository, head string, hashes []string) ([]models.PullRequest, error) {
	remaining := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		remaining[h] = true
	}

	var merged []models.PullRequest
	for page := 1; len(remaining) > 0; page++ {
		path := fmt.Sprintf("repos/%s/%s/pulls?state=closed&base=%s&sort=created&direction=desc&per_page=%d&page=%d",
			repo.Owner, repo.Name, url.QueryEscape(head), perPage, page)

		var prs []restPullRequest
		if err := c.rest.Get(path, &prs); err != nil {
			return nil, fmt.Errorf("failed to list closed pull requests: %w", err)
		}

		merged = append(merged, matchMerged(prs, remaining)...)
		if len(prs) < perPage {
			break
		}
	}
	return merged, nil
}

// matchMerged keeps the pull requests whose merge commit is in remaining,
// consuming each hash so a re-listed PR cannot match twice
func matchMerged(prs []restPullRequest, remaining map[string]bool) []models.PullRequest {
	var matched []models.PullRequest
	for _, pr := range prs {
		if pr.MergeCommitSHA == "" || !remaining[pr.MergeCommitSHA] {
			continue
		}
		matched = append(matched, pr.toModel())
		delete(remaining, pr.MergeCommitSHA)
	}
	return matched
}

// ListOpenReleasePRs fetches the open pull requests from head into base,
// newest-created-first
func (c *Client) ListOpenReleasePRs(repo models.Repository, head, base string) ([]models.PullRequest, error) {
	var q struct {
		Repository struct {
			PullRequests struct {
				Nodes []struct {
					Number    int
					Title     string
					Body      string
					URL       string
					CreatedAt string
					Author    struct {
						Login string
					}
				}
			} `graphql:"pullRequests(states: OPEN, headRefName: $head, baseRefName: $base, first: $first, orderBy: {field: CREATED_AT, direction: DESC})"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(repo.Owner),
		"name":  graphql.String(repo.Name),
		"head":  graphql.String(head),
		"base":  graphql.String(base),
		"first": graphql.Int(10),
	}

	if err := c.gql.Query("", &q, variables); err != nil {
		return nil, fmt.Errorf("failed to list open release pull requests: %w", err)
	}

	open := make([]models.PullRequest, 0, len(q.Repository.PullRequests.Nodes))
	for _, node := range q.Repository.PullRequests.Nodes {
		open = append(open, models.PullRequest{
			Number:    node.Number,
			Title:     node.Title,
			Author:    node.Author.Login,
			CreatedAt: node.CreatedAt,
			URL:       node.URL,
			Body:      node.Body,
		})
	}
	return open, nil
}

// CreatePullRequest opens a new pull request
func (c *Client) CreatePullRequest(repo models.Repository, pr models.NewPullRequest) (*models.PullRequest, error) {
	jsonBody, err := json.Marshal(map[string]interface{}{
		"title": pr.Title,
		"body":  pr.Body,
		"head":  pr.Head,
		"base":  pr.Base,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	path := fmt.Sprintf("repos/%s/%s/pulls", repo.Owner, repo.Name)
	var created restPullRequest
	if err := c.rest.Post(path, bytes.NewReader(jsonBody), &created); err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	result := created.toModel()
	return &result, nil
}

// UpdatePullRequest edits the title and body of an existing pull request
func (c *Client) UpdatePullRequest(repo models.Repository, number int, title, body string) (*models.PullRequest, error) {
	jsonBody, err := json.Marshal(map[string]interface{}{
		"title": title,
		"body":  body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	path := fmt.Sprintf("repos/%s/%s/pulls/%d", repo.Owner, repo.Name, number)
	var updated restPullRequest
	if err := c.rest.Patch(path, bytes.NewReader(jsonBody), &updated); err != nil {
		return nil, fmt.Errorf("failed to update pull request #%d: %w", number, err)
	}

	result := updated.toModel()
	return &result, nil
}

// AddLabels attaches labels to a pull request
func (c *Client) AddLabels(repo models.Repository, number int, labels []string) error {
	jsonBody, err := json.Marshal(map[string]interface{}{
		"labels": labels,
	})
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	path := fmt.Sprintf("repos/%s/%s/issues/%d/labels", repo.Owner, repo.Name, number)
	var response interface{}
	if err := c.rest.Post(path, bytes.NewReader(jsonBody), &response); err != nil {
		return fmt.Errorf("failed to add labels to #%d: %w", number, err)
	}
	return nil
}
