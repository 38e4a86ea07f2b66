package credentials

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/cavatica/internal/mocks/pkg/credentials_mock"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

func TestBuildHeaders(t *testing.T) {
	store := credentials_mock.NewMockStore(gomock.NewController(t))

	store.EXPECT().Connection(gomock.Any(), "cavatica").Return(&structs.Connection{ID: "cavatica", Password: "abc"}, nil)

	result, err := BuildHeaders(context.Background(), store, "cavatica")

	assert.Nil(t, err)
	assert.Equal(t, structs.Headers{"Content-Type": "application/json", "X-SBG-Auth-Token": "abc"}, result)
}

func TestBuildHeadersErrors(t *testing.T) {
	cases := []struct {
		Name   string
		Conn   *structs.Connection
		Err    error
		Expect error
	}{
		{"LookupFails", nil, fmt.Errorf("db down"), errors.ErrHeaderBuild},
		{"NoConnection", nil, nil, errors.ErrHeaderBuild},
		{"NoPassword", &structs.Connection{ID: "cavatica"}, nil, errors.ErrHeaderBuild},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			store := credentials_mock.NewMockStore(gomock.NewController(t))

			store.EXPECT().Connection(gomock.Any(), "cavatica").Return(c.Conn, c.Err)

			result, err := BuildHeaders(context.Background(), store, "cavatica")

			assert.ErrorIs(t, err, c.Expect)
			assert.Nil(t, result)
		})
	}
}

func TestBuildHeadersNoStore(t *testing.T) {
	_, err := BuildHeaders(context.Background(), nil, "cavatica")

	assert.ErrorIs(t, err, errors.ErrHeaderBuild)
}

func TestStatic(t *testing.T) {
	conn := &structs.Connection{ID: "a", Host: "https://example.com", Password: "p"}
	store := Static{"a": conn}

	result, err := store.Connection(context.Background(), "a")
	assert.Nil(t, err)
	assert.Equal(t, conn, result)

	_, err = store.Connection(context.Background(), "b")
	assert.ErrorIs(t, err, errors.ErrConnectionNotFound)
}
