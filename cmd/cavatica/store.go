package main

import (
	"context"
	"errors"

	"github.com/voidshard/cavatica/pkg/credentials"
	ie "github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// overrideStore replaces the host and / or token of connections from inner.
// If both are set a connection need not exist in inner at all.
type overrideStore struct {
	inner credentials.Store
	host  string
	token string
}

func (s *overrideStore) Connection(ctx context.Context, id string) (*structs.Connection, error) {
	conn, err := s.inner.Connection(ctx, id)
	if errors.Is(err, ie.ErrConnectionNotFound) && s.host != "" && s.token != "" {
		conn, err = &structs.Connection{ID: id}, nil
	}
	if err != nil {
		return nil, err
	}

	out := *conn
	if s.host != "" {
		out.Host = s.host
	}
	if s.token != "" {
		out.Password = s.token
	}
	return &out, nil
}
