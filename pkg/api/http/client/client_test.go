package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/cavatica/internal/fakeplatform"
	"github.com/voidshard/cavatica/pkg/api/http/common"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

func TestAddr(t *testing.T) {
	cases := []struct {
		Name   string
		Base   string
		Path   string
		Expect string
	}{
		{"NoBasePath", "https://example.com", "/tasks/a", "https://example.com/tasks/a"},
		{"BasePath", "https://example.com/v2", "/tasks/a", "https://example.com/v2/tasks/a"},
		{"BasePathTrailingSlash", "https://example.com/v2/", "/storage/imports", "https://example.com/v2/storage/imports"},
		{"RelativePath", "http://localhost:8080/v2", "tasks/a", "http://localhost:8080/v2/tasks/a"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cli, err := New(c.Base, nil)
			require.Nil(t, err)

			assert.Equal(t, c.Expect, cli.addr(c.Path).String())
		})
	}
}

func TestGetSendsHeaders(t *testing.T) {
	var seen http.Header
	router := mux.NewRouter()
	router.HandleFunc("/v2/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		json.NewEncoder(w).Encode(map[string]string{"id": mux.Vars(r)["id"], "status": "RUNNING"})
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(router)
	defer srv.Close()

	cli, err := New(srv.URL+"/v2", nil)
	require.Nil(t, err)

	out := &structs.TaskState{}
	err = cli.Get(context.Background(), "/tasks/abc", structs.Headers{
		common.HEADER_CONTENT_TYPE: common.CONTENT_TYPE_JSON,
		common.HEADER_AUTH_TOKEN:   "token",
	}, out)

	assert.Nil(t, err)
	require.NotNil(t, out.Status)
	assert.Equal(t, "RUNNING", *out.Status)
	assert.Equal(t, "token", seen.Get(common.HEADER_AUTH_TOKEN))
	assert.Equal(t, common.CONTENT_TYPE_JSON, seen.Get(common.HEADER_CONTENT_TYPE))
}

func TestPost(t *testing.T) {
	platform := fakeplatform.New("token")
	platform.SetJobIDs("job-1")
	srv := httptest.NewServer(platform.Handler())
	defer srv.Close()

	cli, err := New(srv.URL, nil)
	require.Nil(t, err)

	out := &structs.JobCreated{}
	err = cli.Post(context.Background(), common.API_STORAGE_EXPORTS, structs.Headers{common.HEADER_AUTH_TOKEN: "token"}, map[string]interface{}{"overwrite": true}, out)

	assert.Nil(t, err)
	assert.Equal(t, "job-1", out.ID)
	assert.Equal(t, []map[string]interface{}{{"overwrite": true}}, platform.Bodies(common.API_STORAGE_EXPORTS))
}

func TestErrors(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bad-json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": `))
	})
	router.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.HandleFunc("/server-error", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oh no", http.StatusInternalServerError)
	})
	router.HandleFunc("/wrong-type", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 12}`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	cases := []struct {
		Name   string
		Path   string
		Expect error
	}{
		{"BadJson", "/bad-json", errors.ErrResponseParse},
		{"EmptyBody", "/empty", errors.ErrResponseParse},
		{"ServerError", "/server-error", errors.ErrTransport},
		{"NotFound", "/nothing-here", errors.ErrTransport},
		{"WrongType", "/wrong-type", errors.ErrResponseParse},
	}

	cli, err := New(srv.URL, nil)
	require.Nil(t, err)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			err := cli.Get(context.Background(), c.Path, nil, &structs.TaskState{})

			assert.ErrorIs(t, err, c.Expect)
		})
	}
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cli, err := New(srv.URL, nil)
	require.Nil(t, err)

	err = cli.Get(context.Background(), "/tasks/a", nil, &structs.TaskState{})

	assert.ErrorIs(t, err, errors.ErrTransport)
}

func TestRateLimit(t *testing.T) {
	p := fakeplatform.New("")
	p.SetStatuses("a", "RUNNING")
	srv := httptest.NewServer(p.Handler())
	defer srv.Close()

	cli, err := New(srv.URL, &Options{RateLimit: 0.001})
	require.Nil(t, err)

	err = cli.Get(context.Background(), "/tasks/a", nil, &structs.TaskState{})
	require.Nil(t, err)

	// burst is used up, so the next request must wait far longer than our context allows
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = cli.Get(ctx, "/tasks/a", nil, &structs.TaskState{})

	assert.ErrorIs(t, err, errors.ErrTransport)
	assert.Equal(t, 1, p.Polls("a"))
}
