package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemPath(t *testing.T) {
	cases := []struct {
		Name   string
		Prefix string
		ID     string
		Expect string
	}{
		{"Tasks", API_TASKS, "abc", "/tasks/abc"},
		{"TrailingSlash", API_STORAGE_EXPORTS + "/", "job-1", "/storage/exports/job-1"},
		{"Imports", API_STORAGE_IMPORTS, "job-2", "/storage/imports/job-2"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ItemPath(c.Prefix, c.ID))
		})
	}
}
