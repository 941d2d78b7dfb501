package codec

import (
	"fmt"
	"unicode"
)

// ValidateName checks that a player name fits the name field. Names
// must be 1 to NameMax characters with no whitespace anywhere; the
// empty string is rejected because it is indistinguishable from the
// null padding of every record.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("player name is empty")
	}
	if len(name) > NameMax {
		return fmt.Errorf("player name %q exceeds %d characters", name, NameMax)
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("player name %q contains whitespace", name)
		}
		if r == 0 {
			// The null byte is the field terminator and can never
			// appear inside a stored name.
			return fmt.Errorf("player name contains a null byte")
		}
	}
	return nil
}
