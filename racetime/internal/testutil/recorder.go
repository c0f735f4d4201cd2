package testutil

import (
	"cmp"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Recorder is an http.RoundTripper that records the URL of each request it passes on.
// If W is set, it also writes a one-line summary of each request and response to W.
type Recorder struct {
	W        io.Writer
	Next     http.RoundTripper
	requests []string
	lock     sync.Mutex
}

func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	r.lock.Lock()
	r.requests = append(r.requests, req.Method+" "+req.URL.String())
	r.lock.Unlock()

	resp, err := cmp.Or(r.Next, http.DefaultTransport).RoundTrip(req)
	if r.W != nil {
		if err != nil {
			_, _ = fmt.Fprintf(r.W, "%s %s: %v\n", req.Method, req.URL.String(), err)
		} else {
			_, _ = fmt.Fprintf(r.W, "%s %s: %s\n", req.Method, req.URL.String(), cmp.Or(resp.Status, http.StatusText(resp.StatusCode)))
		}
	}
	return resp, err
}

// Requests returns the requests recorded so far, as "METHOD URL".
func (r *Recorder) Requests() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	requests := make([]string, len(r.requests))
	copy(requests, r.requests)
	return requests
}
