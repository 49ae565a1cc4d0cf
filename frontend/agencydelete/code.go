package agencydelete

import (
	"crypto/rand"
	"strings"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the confirmation code length shown to the operator.
const CodeLength = 8

// newConfirmationCode generates the 8-character alphanumeric code the
// operator must retype. Ambiguous characters (0/O, 1/I) are left out of the
// alphabet.
func newConfirmationCode() string {
	buf := make([]byte, CodeLength)
	_, _ = rand.Read(buf)
	out := make([]byte, CodeLength)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out)
}

// codeMatches compares operator input against the stored code,
// case-insensitively via uppercase normalization. This is UI friction, not
// a cryptographic proof.
func codeMatches(code, input string) bool {
	return code != "" && strings.ToUpper(strings.TrimSpace(input)) == strings.ToUpper(code)
}
