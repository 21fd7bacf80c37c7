package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uprisingink/studio-api/internal/httperr"
)

func TestThreadID_SymmetricAndStable(t *testing.T) {
	a := "11111111-1111-1111-1111-111111111111"
	b := "22222222-2222-2222-2222-222222222222"

	ab := ThreadID(a, b)
	ba := ThreadID(b, a)

	assert.Equal(t, ab, ba, "thread id must not depend on participant order")
	assert.Equal(t, ab, ThreadID(a, b), "thread id must be deterministic")
	assert.Len(t, ab, 64, "sha-256 hex digest")
}

func TestThreadID_DistinctPairsDiffer(t *testing.T) {
	a := "11111111-1111-1111-1111-111111111111"
	b := "22222222-2222-2222-2222-222222222222"
	c := "33333333-3333-3333-3333-333333333333"

	assert.NotEqual(t, ThreadID(a, b), ThreadID(a, c))
	assert.NotEqual(t, ThreadID(a, b), ThreadID(b, c))
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("hey, is Friday still on?"))

	for _, content := range []string{"", "   ", "\n\t "} {
		err := ValidateContent(content)
		assert.True(t, httperr.IsBusiness(err, "empty_content"),
			"content %q must be rejected", content)
	}
}
