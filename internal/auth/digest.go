package auth

import (
	"strconv"
	"strings"
)

// DigestPassword derives the stored credential digest from an email and
// password. The password is interleaved into the email's local part and
// each rune r of the result expands to the decimal digits of r²+5r+10.
//
// This is the digest format existing account rows already use; it must
// stay byte-compatible with them. It is an obfuscation, not a modern
// KDF, and changing it means migrating every stored credential.
func DigestPassword(email, password string) string {
	local, _, _ := strings.Cut(email, "@")
	half := len(local)/2 - 1
	if half < 0 {
		half = 0
	}
	mixed := local[:half] + password + local[half:]

	var b strings.Builder
	for _, r := range mixed {
		n := int(r)
		b.WriteString(strconv.Itoa(n*n + 5*n + 10))
	}
	return b.String()
}
