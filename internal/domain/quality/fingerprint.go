package quality

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// fingerprintSep joins fields before hashing. U+241F (SYMBOL FOR UNIT
// SEPARATOR) does not occur in typical field content, but nothing stops a
// field from containing it: the duplicate count built on these
// fingerprints is an estimate, not an exact figure, and is reported as
// such.
const fingerprintSep = "␟"

// FingerprintRow returns a 40-character hex digest identifying a row's
// field values. Identical fields always produce the same fingerprint
// across runs and platforms.
func FingerprintRow(fields []string) string {
	sum := sha1.Sum([]byte(strings.Join(fields, fingerprintSep)))
	return hex.EncodeToString(sum[:])
}
