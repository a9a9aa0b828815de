package platform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Count
	}{
		{"number", `{"easySolved": 7}`, 7},
		{"numeric string", `{"easySolved": "12"}`, 12},
		{"float truncates", `{"easySolved": 3.9}`, 3},
		{"garbage string", `{"easySolved": "abc"}`, 0},
		{"bool", `{"easySolved": true}`, 0},
		{"null", `{"easySolved": null}`, 0},
		{"missing", `{}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req StatsRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, req.EasySolved)
		})
	}
}

func TestIsFixed(t *testing.T) {
	for _, p := range []string{Leetcode, Codeforces, Codechef, Hackerrank} {
		assert.True(t, IsFixed(p))
	}
	assert.False(t, IsFixed("GFG"))
	assert.False(t, IsFixed("Leetcode"), "fixed identifiers are lowercase")
	assert.False(t, IsFixed(""))
}
