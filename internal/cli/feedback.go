package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

// consoleFeedback is the terminal implementation of the engine's feedback
// channel. It remembers whether an error was reported so commands can exit
// non-zero without printing twice.
type consoleFeedback struct {
	failed bool
}

// Emit displays one workflow outcome.
func (f *consoleFeedback) Emit(kind app.FeedbackKind, text string) {
	if kind == app.FeedbackError {
		f.failed = true
	}

	if jsonOutput {
		printJSON(map[string]string{
			"status":  string(kind),
			"message": text,
		})
		return
	}

	if kind == app.FeedbackSuccess {
		okLabel.Printf("✓ %s\n", text)
	} else {
		errorLabel.Fprintf(os.Stderr, "Error: %s\n", text)
	}
}

// Result translates the reported outcome into the command's exit status.
func (f *consoleFeedback) Result() error {
	if f.failed {
		return ErrAlreadyHandled
	}
	return nil
}

// terminalConfirm prompts on stdout and reads a yes/no answer from stdin.
// Anything but an explicit yes declines.
func terminalConfirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
