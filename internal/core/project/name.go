package project

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MaxNameLength is the longest directory name accepted, in bytes.
const MaxNameLength = 255

// invalidNameChars are rejected on at least one supported filesystem.
const invalidNameChars = `<>:"|?*\/`

// reservedNames are the Windows device names, matched case-insensitively.
var reservedNames = []string{
	"con", "prn", "aux", "nul",
	"com1", "com2", "com3", "com4", "com5", "com6", "com7", "com8", "com9",
	"lpt1", "lpt2", "lpt3", "lpt4", "lpt5", "lpt6", "lpt7", "lpt8", "lpt9",
}

// ValidateName checks a target directory name. Rules run in order and the
// first failure is returned: empty, too long, invalid characters, reserved.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}

	// Filesystems that keep names as given store the raw bytes; the others
	// store the NFC form.
	if n := max(len(name), len(norm.NFC.String(name))); n > MaxNameLength {
		return fmt.Errorf("%w: got %d bytes", ErrNameTooLong, n)
	}

	if i := strings.IndexAny(name, invalidNameChars); i >= 0 {
		return fmt.Errorf("%w: %q", ErrNameInvalidChars, name[i])
	}

	if slices.Contains(reservedNames, cases.Fold().String(name)) {
		return fmt.Errorf("%w: %q", ErrNameReserved, name)
	}

	return nil
}
