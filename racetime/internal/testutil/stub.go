package testutil

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
)

var _ http.RoundTripper = &Stub{}

// Stub is an http.RoundTripper that answers every request with the same response, without any network traffic.
// If Err is set, RoundTrip returns Err instead.
type Stub struct {
	Err        error
	Header     http.Header
	Body       string
	StatusCode int
	calls      atomic.Int64
}

func (s *Stub) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	statusCode := s.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	header := s.Header
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		Status:        strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header.Clone(),
		Body:          io.NopCloser(strings.NewReader(s.Body)),
		ContentLength: int64(len(s.Body)),
		Request:       req,
	}, nil
}

// Calls returns the number of requests the Stub received.
func (s *Stub) Calls() int {
	return int(s.calls.Load())
}
