package credentials

import (
	"context"
	"fmt"

	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Static is a Store backed by a map, keyed by connection ID.
type Static map[string]*structs.Connection

func (s Static) Connection(ctx context.Context, id string) (*structs.Connection, error) {
	conn, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w %s", errors.ErrConnectionNotFound, id)
	}
	return conn, nil
}
