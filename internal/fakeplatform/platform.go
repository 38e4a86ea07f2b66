// Package fakeplatform is an in-memory stand in for the platform REST API,
// for use with httptest.
package fakeplatform

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/voidshard/cavatica/pkg/api/http/common"
)

// Platform serves task & storage job endpoints with scripted statuses.
type Platform struct {
	lock sync.Mutex

	// token we expect in every request, if set
	token string

	// task / job ID -> statuses to return, in order. The last status repeats.
	statuses map[string][]string
	polls    map[string]int

	// job IDs to hand out on POST, in order (random if we run out)
	ids []string

	// import job ID -> resulting file ID
	results map[string]string

	// "METHOD path" -> status code to fail with
	failures map[string]int

	// raw bodies, per prefix (ie. common.API_STORAGE_EXPORTS)
	bodies map[string][]map[string]interface{}

	requests []string
}

// New returns a platform that requires the given token (if not empty).
func New(token string) *Platform {
	return &Platform{
		token:    token,
		statuses: map[string][]string{},
		polls:    map[string]int{},
		results:  map[string]string{},
		failures: map[string]int{},
		bodies:   map[string][]map[string]interface{}{},
	}
}

// Handler returns a router serving the platform API.
func (p *Platform) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(common.API_TASKS+"/{id}", p.get(common.API_TASKS)).Methods(http.MethodGet)
	router.HandleFunc(common.API_STORAGE_EXPORTS+"/{id}", p.get(common.API_STORAGE_EXPORTS)).Methods(http.MethodGet)
	router.HandleFunc(common.API_STORAGE_IMPORTS+"/{id}", p.get(common.API_STORAGE_IMPORTS)).Methods(http.MethodGet)
	router.HandleFunc(common.API_STORAGE_EXPORTS, p.create(common.API_STORAGE_EXPORTS)).Methods(http.MethodPost)
	router.HandleFunc(common.API_STORAGE_IMPORTS, p.create(common.API_STORAGE_IMPORTS)).Methods(http.MethodPost)
	router.Use(p.record, p.auth)
	return router
}

// SetStatuses sets the statuses returned for id, one per GET.
func (p *Platform) SetStatuses(id string, statuses ...string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.statuses[id] = statuses
}

// SetJobIDs sets the IDs handed out by POST, in order.
func (p *Platform) SetJobIDs(ids ...string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ids = append(p.ids, ids...)
}

// SetImportResult sets the file ID reported by a finished import job.
func (p *Platform) SetImportResult(jobID, fileID string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.results[jobID] = fileID
}

// Fail causes requests to method & path to return code.
func (p *Platform) Fail(method, path string, code int) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.failures[method+" "+path] = code
}

// Polls returns how many times id has been fetched.
func (p *Platform) Polls(id string) int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.polls[id]
}

// Bodies returns the bodies POSTed to the given prefix.
func (p *Platform) Bodies(prefix string) []map[string]interface{} {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]map[string]interface{}{}, p.bodies[prefix]...)
}

// Requests returns "METHOD path" for every request we've seen, in order.
func (p *Platform) Requests() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string{}, p.requests...)
}

func (p *Platform) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		p.lock.Lock()
		p.requests = append(p.requests, key)
		code, fail := p.failures[key]
		p.lock.Unlock()

		if fail {
			http.Error(w, "injected failure", code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *Platform) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.token != "" && r.Header.Get(common.HEADER_AUTH_TOKEN) != p.token {
			http.Error(w, `{"message": "unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *Platform) get(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		p.lock.Lock()
		statuses, ok := p.statuses[id]
		count := p.polls[id]
		p.polls[id]++
		result, hasResult := p.results[id]
		p.lock.Unlock()

		if !ok {
			http.Error(w, `{"message": "not found"}`, http.StatusNotFound)
			return
		}

		out := map[string]interface{}{"id": id}
		if len(statuses) > 0 {
			if count >= len(statuses) {
				count = len(statuses) - 1
			}
			out["status"] = statuses[count]
		}
		if prefix == common.API_STORAGE_IMPORTS && hasResult {
			out["result"] = map[string]interface{}{"id": result}
		}
		writeJson(w, out)
	}
}

func (p *Platform) create(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p.lock.Lock()
		p.bodies[prefix] = append(p.bodies[prefix], body)
		id := uuid.New().String()
		if len(p.ids) > 0 {
			id = p.ids[0]
			p.ids = p.ids[1:]
		}
		if _, ok := p.statuses[id]; !ok {
			p.statuses[id] = []string{"COMPLETED"}
		}
		p.lock.Unlock()

		w.WriteHeader(http.StatusCreated)
		writeJson(w, map[string]interface{}{"id": id})
	}
}

func writeJson(w http.ResponseWriter, obj interface{}) {
	err := json.NewEncoder(w).Encode(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
