package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected FlexID
		wantErr  bool
	}{
		{name: "number", payload: `{"id":42}`, expected: 42},
		{name: "quoted number", payload: `{"id":"42"}`, expected: 42},
		{name: "null", payload: `{"id":null}`, expected: 0},
		{name: "empty string", payload: `{"id":""}`, expected: 0},
		{name: "word", payload: `{"id":"abc"}`, wantErr: true},
		{name: "negative", payload: `{"id":-1}`, wantErr: true},
		{name: "float", payload: `{"id":1.5}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				ID FlexID `json:"id"`
			}

			err := json.Unmarshal([]byte(tc.payload), &out)

			if tc.wantErr {
				require.ErrorIs(t, err, ErrBadID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.ID)
		})
	}
}
