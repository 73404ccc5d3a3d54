package gitconfig

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ryo246912/gh-pr-release/internal/models"
)

// ErrConfigNotFound is returned when a required key has no value in any source
var ErrConfigNotFound = errors.New("configuration key not found")

// ErrInvalidRemoteURL is returned when the origin URL is not a recognized GitHub URL
var ErrInvalidRemoteURL = errors.New("remote URL is not a GitHub repository URL")

// localConfigFile is the tool-specific config file at the repository root
const localConfigFile = ".gh-pr-release"

var remoteURLPattern = regexp.MustCompile(`^(?:git@github\.com:|https://github\.com/)([^/]+)/(.+?)(?:\.git)?$`)

// Resolver reads configuration values from the tool-specific config file
// and the repository's git configuration, in that order.
type Resolver struct {
	Path string

	// runner executes git with the given arguments and returns trimmed
	// stdout. An unset key maps to ("", nil), never an error.
	runner func(args ...string) (string, error)
}

func NewResolver(path string) *Resolver {
	return &Resolver{Path: path, runner: runGit}
}

// Get looks up key in the .gh-pr-release file (when localFirst), then the
// repository git config, then falls back. With no value and no fallback it
// returns ErrConfigNotFound.
func (r *Resolver) Get(key, fallback string, localFirst bool) (string, error) {
	if localFirst {
		value, err := r.runner("config", "--file", filepath.Join(r.Path, localConfigFile), "--get", key)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}

	value, err := r.runner("-C", r.Path, "config", "--get", key)
	if err != nil {
		return "", err
	}
	if value != "" {
		return value, nil
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("%w: %s", ErrConfigNotFound, key)
}

// Head returns the integration branch name
func (r *Resolver) Head() (string, error) {
	return r.Get("gh-pr-release.branch.head", "develop", true)
}

// Base returns the release branch name
func (r *Resolver) Base() (string, error) {
	return r.Get("gh-pr-release.branch.base", "master", true)
}

// Token returns the GitHub API token, falling back to the conventional
// environment variables when no config value is set
func (r *Resolver) Token() (string, error) {
	value, err := r.Get("gh-pr-release.token", "", true)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return "", err
	}
	for _, name := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(name); token != "" {
			return token, nil
		}
	}
	return "", err
}

// Labels returns the labels to put on the release pull request, if any
func (r *Resolver) Labels() ([]string, error) {
	value, err := r.Get("gh-pr-release.labels", "", true)
	if errors.Is(err, ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, label := range strings.Split(value, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels, nil
}

// Remote returns the origin remote URL. The tool-specific config file is
// never consulted and there is no default.
func (r *Resolver) Remote() (string, error) {
	return r.Get("remote.origin.url", "", false)
}

// ParseRemoteURL extracts owner and repository name from an SSH-style or
// HTTPS-style GitHub remote URL
func ParseRemoteURL(remoteURL string) (models.Repository, error) {
	m := remoteURLPattern.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if m == nil {
		return models.Repository{}, fmt.Errorf("%w: %q", ErrInvalidRemoteURL, remoteURL)
	}
	return models.Repository{Owner: m[1], Name: m[2]}, nil
}

func runGit(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		// git config exits 1 when the key (or file) does not exist
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
