package credentials

//go:generate mockgen -source=store.go -destination=../../internal/mocks/pkg/credentials_mock/store.go -package=credentials_mock

import (
	"context"
	"fmt"

	"github.com/voidshard/cavatica/pkg/api/http/common"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Store looks up named connections.
type Store interface {
	// Connection returns the connection with the given ID, or an error
	// wrapping ErrConnectionNotFound.
	Connection(ctx context.Context, id string) (*structs.Connection, error)
}

// BuildHeaders returns the headers needed to talk to the platform using
// the token stored as the password of the named connection.
//
// Any failure is returned as ErrHeaderBuild.
func BuildHeaders(ctx context.Context, store Store, connID string) (structs.Headers, error) {
	if store == nil {
		return nil, fmt.Errorf("%w using connection %s: no credential store", errors.ErrHeaderBuild, connID)
	}
	conn, err := store.Connection(ctx, connID)
	if err != nil {
		return nil, fmt.Errorf("%w using connection %s: %v", errors.ErrHeaderBuild, connID, err)
	}
	if conn == nil || conn.Password == "" {
		return nil, fmt.Errorf("%w using connection %s: no token set", errors.ErrHeaderBuild, connID)
	}
	return structs.Headers{
		common.HEADER_CONTENT_TYPE: common.CONTENT_TYPE_JSON,
		common.HEADER_AUTH_TOKEN:   conn.Password,
	}, nil
}
