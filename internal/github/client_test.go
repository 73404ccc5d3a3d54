package github

import (
	"testing"
)

func TestMatchMerged(t *testing.T) {
	prs := []restPullRequest{
		{Number: 12, Title: "Fix Z", MergeCommitSHA: "ccc"},
		{Number: 11, Title: "Fix Y", MergeCommitSHA: "bbb"},
		{Number: 9, Title: "Reverted thing", MergeCommitSHA: "zzz"},
		{Number: 8, Title: "Closed without merge", MergeCommitSHA: ""},
		{Number: 10, Title: "Add X", MergeCommitSHA: "aaa"},
	}
	remaining := map[string]bool{"aaa": true, "bbb": true, "ccc": true}

	matched := matchMerged(prs, remaining)

	if len(matched) != 3 {
		t.Fatalf("matchMerged returned %d pull requests, want 3", len(matched))
	}
	wantNumbers := []int{12, 11, 10}
	for i, pr := range matched {
		if pr.Number != wantNumbers[i] {
			t.Errorf("matched[%d].Number = %d, want %d", i, pr.Number, wantNumbers[i])
		}
	}
	if len(remaining) != 0 {
		t.Errorf("expected all hashes consumed, %d left", len(remaining))
	}
}

func TestMatchMergedConsumesHashOnce(t *testing.T) {
	// Two closed PRs can report the same merge commit after a re-merge;
	// only the first listed may match.
	prs := []restPullRequest{
		{Number: 21, Title: "Re-merge", MergeCommitSHA: "aaa"},
		{Number: 20, Title: "Original", MergeCommitSHA: "aaa"},
	}
	remaining := map[string]bool{"aaa": true}

	matched := matchMerged(prs, remaining)

	if len(matched) != 1 {
		t.Fatalf("matchMerged returned %d pull requests, want 1", len(matched))
	}
	if matched[0].Number != 21 {
		t.Errorf("matched[0].Number = %d, want 21", matched[0].Number)
	}
}

func TestRestPullRequestToModel(t *testing.T) {
	pr := restPullRequest{
		Number:         42,
		Title:          "Add widgets",
		Body:           "body text",
		MergeCommitSHA: "abc123",
		CreatedAt:      "2023-06-01T12:00:00Z",
		HTMLURL:        "https://github.com/acme/widgets/pull/42",
	}
	pr.User.Login = "alice"

	m := pr.toModel()

	if m.Number != 42 || m.Title != "Add widgets" || m.Author != "alice" {
		t.Errorf("toModel() = %+v, want number 42, title %q, author alice", m, "Add widgets")
	}
	if m.MergeCommitSHA != "abc123" || m.URL != "https://github.com/acme/widgets/pull/42" {
		t.Errorf("toModel() did not carry SHA/URL: %+v", m)
	}
}
