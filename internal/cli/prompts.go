package cli

import (
	"fmt"
	"os"
	"strings"
)

// promptConfirmation asks the user to confirm an action that would overwrite
// existing share files on disk.
func promptConfirmation() bool {
	out(os.Stderr, "\nShare files already exist at the target path. Overwrite? [y/N]: ")

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
