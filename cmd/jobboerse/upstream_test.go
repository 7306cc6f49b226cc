package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"jobboerse-cli/internal/jobsuche"
	"jobboerse-cli/internal/search"
)

const testJobURLBase = "https://jobboerse.arbeitsagentur.de/vamJB/"

// fakeUpstream serves canned search and detail bodies. A zero status means 200.
type fakeUpstream struct {
	searchStatus int
	searchBody   string
	detailStatus int
	detailBody   string

	mu          sync.Mutex
	detailPaths []string
}

func (f *fakeUpstream) details() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.detailPaths...)
}

func (f *fakeUpstream) start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		status, body := f.searchStatus, f.searchBody
		if strings.HasPrefix(r.URL.Path, "/pc/v2/jobdetails/") {
			f.mu.Lock()
			f.detailPaths = append(f.detailPaths, strings.TrimPrefix(r.URL.Path, "/pc/v2/jobdetails/"))
			f.mu.Unlock()
			status, body = f.detailStatus, f.detailBody
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testService(srv *httptest.Server) *search.Service {
	c := jobsuche.New(jobsuche.Config{
		SearchURL:  srv.URL + "/pc/v4/jobs",
		DetailURL:  srv.URL + "/pc/v2/jobdetails/",
		JobURLBase: testJobURLBase,
		APIKey:     "test-key",
		UserAgent:  "job-search-script",
	})
	return &search.Service{API: c, JobURLBase: testJobURLBase}
}
