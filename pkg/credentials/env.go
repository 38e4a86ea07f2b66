package credentials

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode"

	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

const (
	defaultEnvPrefix = "CAVATICA_CONN_"
)

// Env is a Store that reads connections from environment variables.
//
// Connection "my-conn" is read from $CAVATICA_CONN_MY_CONN as a URI where
// the password is the token, ie.
//
//	https://:<token>@cavatica-api.sbgenomics.com/v2
type Env struct {
	// Prefix of env vars, defaults to CAVATICA_CONN_
	Prefix string
}

func (e *Env) Connection(ctx context.Context, id string) (*structs.Connection, error) {
	name := e.varName(id)
	raw := os.Getenv(name)
	if raw == "" {
		return nil, fmt.Errorf("%w %s ($%s not set)", errors.ErrConnectionNotFound, id, name)
	}
	return parseConnURI(id, raw)
}

func (e *Env) varName(id string) string {
	prefix := e.Prefix
	if prefix == "" {
		prefix = defaultEnvPrefix
	}
	return prefix + strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, id)
}

// parseConnURI splits a connection URI into a host (without user info) & password.
func parseConnURI(id, raw string) (*structs.Connection, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w connection %s is not a valid URI: %v", errors.ErrInvalidArg, id, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w connection %s requires a scheme and host", errors.ErrInvalidArg, id)
	}

	conn := &structs.Connection{ID: id}
	if u.User != nil {
		conn.Password, _ = u.User.Password()
		if conn.Password == "" { // allow https://<token>@host as well
			conn.Password = u.User.Username()
		}
	}
	u.User = nil
	conn.Host = u.String()
	return conn, nil
}
