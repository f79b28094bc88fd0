package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrUnavailable reports that no system clipboard can be reached on this
// platform (unsupported OS or missing clipboard utilities).
var ErrUnavailable = errors.New("system clipboard is not available")

// Available reports whether the platform exposes a usable clipboard.
func Available() bool {
	return !atotto.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}
