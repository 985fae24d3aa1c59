package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, `["go","web"]`, EncodeTags([]string{"go", "web"}))
	assert.Equal(t, `[]`, EncodeTags(nil), "absent tags store as an empty array, never null")
	assert.Equal(t, `[]`, EncodeTags([]string{}))
}
