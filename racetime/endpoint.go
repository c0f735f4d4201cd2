package racetime

import (
	"strings"

	"github.com/oapi-codegen/runtime"
)

// An Endpoint describes one racetime.gg API operation.
//
// RelativePath returns the endpoint's path, relative to the API's base URL.
type Endpoint interface {
	RelativePath() string
}

// A QueryEndpoint is an Endpoint that takes query parameters.
//
// QueryString returns the URL-encoded query string (without the leading '?').
// Parameters holding their default value should be left out.
type QueryEndpoint interface {
	Endpoint
	QueryString() (string, error)
}

// QueryString returns the query string of the Endpoint. Endpoints that don't implement [QueryEndpoint] have no query parameters.
func QueryString(e Endpoint) (string, error) {
	if q, ok := e.(QueryEndpoint); ok {
		return q.QueryString()
	}
	return "", nil
}

// queryParams builds a query string. Parameters appear in the order they were added.
type queryParams struct {
	pairs []string
}

// add encodes name=value, escaping value for use in a query string.
func (q *queryParams) add(name string, value any) error {
	pair, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return &Error{Kind: KindParameterSerialization, Err: err}
	}
	q.pairs = append(q.pairs, pair)
	return nil
}

// addIf adds the parameter only if set is true.
func (q *queryParams) addIf(set bool, name string, value any) error {
	if !set {
		return nil
	}
	return q.add(name, value)
}

func (q *queryParams) String() string {
	return strings.Join(q.pairs, "&")
}
