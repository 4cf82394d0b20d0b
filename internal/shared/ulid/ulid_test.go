package ulid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_IsUniqueAndSized(t *testing.T) {
	t.Parallel()

	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestNewPrefixed(t *testing.T) {
	t.Parallel()

	id := NewPrefixed("dsp")
	assert.True(t, strings.HasPrefix(id, "dsp_"))
	assert.Len(t, id, len("dsp_")+26)
}
