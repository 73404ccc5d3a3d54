package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryo246912/gh-pr-release/internal/models"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// FormatReleaseItem renders one "to be released" row
func FormatReleaseItem(pr models.PullRequest) string {
	title := pr.Title
	if len(title) > 75 {
		title = title[:72] + "..."
	}
	return fmt.Sprintf("#%s %s @%s",
		PadRight(strconv.Itoa(pr.Number), 6),
		PadRight(title, 75),
		pr.Author,
	)
}
