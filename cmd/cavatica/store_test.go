package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/cavatica/pkg/credentials"
	ie "github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

func TestOverrideStore(t *testing.T) {
	inner := credentials.Static{"cavatica": &structs.Connection{ID: "cavatica", Host: "https://a", Password: "p"}}

	cases := []struct {
		Name   string
		Store  *overrideStore
		ID     string
		Expect *structs.Connection
		Err    error
	}{
		{
			"NoOverride",
			&overrideStore{inner: inner},
			"cavatica",
			&structs.Connection{ID: "cavatica", Host: "https://a", Password: "p"},
			nil,
		},
		{
			"Token",
			&overrideStore{inner: inner, token: "t"},
			"cavatica",
			&structs.Connection{ID: "cavatica", Host: "https://a", Password: "t"},
			nil,
		},
		{
			"HostAndTokenWithoutConnection",
			&overrideStore{inner: inner, token: "t", host: "https://b"},
			"other",
			&structs.Connection{ID: "other", Host: "https://b", Password: "t"},
			nil,
		},
		{
			"TokenWithoutConnection",
			&overrideStore{inner: inner, token: "t"},
			"other",
			nil,
			ie.ErrConnectionNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := c.Store.Connection(context.Background(), c.ID)

			if c.Err != nil {
				assert.ErrorIs(t, err, c.Err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, c.Expect, result)
		})
	}

	// the inner connection is not altered
	assert.Equal(t, "p", inner["cavatica"].Password)
}
