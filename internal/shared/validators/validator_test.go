package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	SourceName string `json:"sourceName" validate:"required"`
	Kind       string `json:"kind" validate:"required,max=4"`
}

func TestNewJSON_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := NewJSON().Struct(&sample{Kind: "restart"})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "sourceName (required)")
	assert.Contains(t, msg, "kind (max=4)")
}

func TestDescribe_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
