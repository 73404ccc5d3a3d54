package main

import (
	"fmt"
	"os"

	"github.com/ryo246912/gh-pr-release/internal/gitconfig"
	"github.com/ryo246912/gh-pr-release/internal/github"
	"github.com/ryo246912/gh-pr-release/internal/service"
	"github.com/ryo246912/gh-pr-release/internal/ui"
	"github.com/spf13/cobra"
)

type options struct {
	path    string
	labels  []string
	confirm bool
}

func runCommand(opts options) error {
	resolver := gitconfig.NewResolver(opts.path)

	token, err := resolver.Token()
	if err != nil {
		return fmt.Errorf("failed to resolve GitHub token: %w", err)
	}
	head, err := resolver.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve head branch: %w", err)
	}
	base, err := resolver.Base()
	if err != nil {
		return fmt.Errorf("failed to resolve base branch: %w", err)
	}
	remote, err := resolver.Remote()
	if err != nil {
		return fmt.Errorf("failed to read origin remote URL: %w", err)
	}
	repo, err := gitconfig.ParseRemoteURL(remote)
	if err != nil {
		return err
	}

	labels := opts.labels
	if len(labels) == 0 {
		if labels, err = resolver.Labels(); err != nil {
			return fmt.Errorf("failed to resolve labels: %w", err)
		}
	}

	// Initialize GitHub client
	client, err := github.NewClient(token)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	// Create service with dependency injection
	releaseService := service.NewReleaseService(client, ui.NewStderrReporter(), &ui.DefaultPrompter{})
	return releaseService.Process(service.ReleaseOptions{
		Repo:    repo,
		Head:    head,
		Base:    base,
		Labels:  labels,
		Confirm: opts.confirm,
	})
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "gh-pr-release",
		Short: "Create or update a release pull request listing merged feature pull requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(opts)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&opts.path, "path", ".", "path to the local repository clone")
	cmd.Flags().StringSliceVar(&opts.labels, "labels", nil, "labels to add to the release pull request (overrides gh-pr-release.labels)")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "ask before creating or updating the pull request")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
