package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmRelease asks for user confirmation before touching the release
// pull request. Declining is not an error.
func ConfirmRelease(summary string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     summary,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return true, nil
}
