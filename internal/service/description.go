package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ryo246912/gh-pr-release/internal/models"
)

// checkedPattern matches a ticked checklist line, `- [x] #N` or `* [x] #N`
var checkedPattern = regexp.MustCompile(`(?:-|\*)\s+\[x\]\s+#(\d+)`)

// Description renders the release checklist, one line per pull request in
// order. Numbers ticked in oldBody stay ticked; anything else in oldBody,
// including surrounding prose, is not carried over.
func Description(prs []models.PullRequest, oldBody string) string {
	checked := checkedNumbers(oldBody)

	var b strings.Builder
	for _, pr := range prs {
		marker := " "
		if checked[pr.Number] {
			marker = "x"
		}
		fmt.Fprintf(&b, "- [%s] #%d %s @%s\n", marker, pr.Number, pr.Title, pr.Author)
	}
	return b.String()
}

func checkedNumbers(body string) map[int]bool {
	checked := make(map[int]bool)
	for _, groups := range checkedPattern.FindAllStringSubmatch(body, -1) {
		if n, err := strconv.Atoi(groups[1]); err == nil {
			checked[n] = true
		}
	}
	return checked
}
