package message

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/uprisingink/studio-api/internal/httperr"
)

// ThreadID derives a stable conversation id from the two participant profile
// ids. The pair is sorted first, so ThreadID(a, b) == ThreadID(b, a) and a
// thread can be fetched by a single indexed column instead of scanning every
// message for both participant orderings.
func ThreadID(profileA, profileB string) string {
	if profileA > profileB {
		profileA, profileB = profileB, profileA
	}

	sum := sha256.Sum256([]byte(profileA + ":" + profileB))
	return hex.EncodeToString(sum[:])
}

// ValidateContent rejects empty (or whitespace-only) message bodies.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return httperr.ErrBusiness("empty_content")
	}
	return nil
}
