package racetime

import (
	"errors"
	"strconv"
)

// Kind identifies the class of failure reported by an [Error].
type Kind int

const (
	// KindConstruction indicates that the Client could not be built.
	KindConstruction Kind = iota + 1
	// KindPathResolution indicates that an endpoint's path could not be joined with the base URL.
	KindPathResolution
	// KindParameterSerialization indicates that an endpoint's query parameters could not be encoded.
	KindParameterSerialization
	// KindTransport indicates a network-level failure: connection refused, timeout, TLS, cancelled context, etc.
	KindTransport
	// KindNotFound indicates that racetime.gg returned 404 Not Found.
	//
	// racetime.gg serves its API from its normal webserver, so a 404 returns the generic, user-facing 404 page
	// rather than a JSON error body.
	KindNotFound
	// KindUnexpectedStatus indicates any other non-2xx status. The response body is not parsed.
	KindUnexpectedStatus
	// KindDeserialization indicates that the response body could not be decoded into the requested type.
	KindDeserialization
)

var kindNames = map[Kind]string{
	KindConstruction:           "construction",
	KindPathResolution:         "path resolution",
	KindParameterSerialization: "parameter serialization",
	KindTransport:              "transport",
	KindNotFound:               "not found",
	KindUnexpectedStatus:       "unexpected status",
	KindDeserialization:        "deserialization",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

var (
	// ErrConstruction matches any error of kind KindConstruction when used with errors.Is.
	ErrConstruction = &Error{Kind: KindConstruction}
	// ErrPathResolution matches any error of kind KindPathResolution.
	ErrPathResolution = &Error{Kind: KindPathResolution}
	// ErrParameterSerialization matches any error of kind KindParameterSerialization.
	ErrParameterSerialization = &Error{Kind: KindParameterSerialization}
	// ErrTransport matches any error of kind KindTransport.
	ErrTransport = &Error{Kind: KindTransport}
	// ErrNotFound matches any error of kind KindNotFound.
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrUnexpectedStatus matches any error of kind KindUnexpectedStatus, regardless of status code.
	ErrUnexpectedStatus = &Error{Kind: KindUnexpectedStatus}
	// ErrDeserialization matches any error of kind KindDeserialization.
	ErrDeserialization = &Error{Kind: KindDeserialization}
)

var _ error = &Error{}

// Error is the error returned by the Client and by [Query].
type Error struct {
	// Err is the underlying error, if any.
	Err error
	// URL is the target of the request, if one was built.
	URL string
	// Status is the HTTP status line (KindNotFound, KindUnexpectedStatus).
	Status string
	// Body holds the response body that failed to decode (KindDeserialization).
	Body []byte
	// StatusCode is the HTTP status code (KindNotFound, KindUnexpectedStatus).
	StatusCode int
	// Kind identifies the class of failure.
	Kind Kind
}

func (e *Error) Error() string {
	txt := "racetime: " + e.Kind.String()
	switch {
	case e.Kind == KindUnexpectedStatus && e.Status != "":
		txt += ": " + e.Status
	case e.Kind == KindUnexpectedStatus && e.StatusCode != 0:
		txt += ": " + strconv.Itoa(e.StatusCode)
	case e.Err != nil:
		txt += ": " + e.Err.Error()
	}
	return txt
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. If target carries a StatusCode, it must match as well,
// so errors.Is(err, &Error{Kind: KindUnexpectedStatus, StatusCode: 503}) only matches a 503.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.StatusCode == 0 || t.StatusCode == e.StatusCode)
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if err does not contain one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
