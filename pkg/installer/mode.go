package installer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/pkghelper/pkg/errors"
)

// DefaultMode is rw-r--r--
const DefaultMode os.FileMode = 0644

// maxMode covers permission, setuid, setgid and sticky bits
const maxMode = 07777

// ParseMode parses octal permission text such as "644" or "0755"
func ParseMode(s string) (os.FileMode, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, errors.New(errors.ErrInvalidInput, "mode must not be empty")
	}

	value, err := strconv.ParseUint(text, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, "mode %q is not an octal number", s)
	}
	if value > maxMode {
		return 0, errors.Newf(errors.ErrInvalidInput, "mode %q is out of range", s)
	}

	return os.FileMode(value), nil
}

// FormatMode renders mode the way install(1) expects it
func FormatMode(mode os.FileMode) string {
	return fmt.Sprintf("%o", uint32(mode)&maxMode)
}
