package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/fivesquare/pkg/squareerrors"
)

const (
	ExitOK      = 0
	ExitFailure = 1

	// GenericErrorMessage is shown for failures outside the error taxonomy.
	GenericErrorMessage = "Uncaught error."
)

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	return ExitFailure
}

// Message returns the message shown to the user for err.
func Message(err error) string {
	if squareerrors.IsKnown(err) {
		return err.Error()
	}

	return GenericErrorMessage
}

// Report writes the message for err to w and returns the exit code. Nothing
// is written when err is nil.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(lipgloss.Color("9"))

	fmt.Fprintln(w, style.Render(Message(err)))

	return ExitCode(err)
}

func causeOf(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}

		err = next
	}
}
