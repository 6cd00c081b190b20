package entities

import (
	"encoding/json"
	"strings"
)

// ResponseKind tells a normal iPay answer apart from a soft error: an error
// status whose body has no error_code (validation errors and similar). Hard
// errors never produce a GatewayResponse, they surface as *GatewayError.
type ResponseKind int

const (
	ResponseSuccess ResponseKind = iota
	ResponseSoftError
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseSuccess:
		return "success"
	case ResponseSoftError:
		return "soft_error"
	}
	return "unknown"
}

// GatewayResponse is an untyped iPay response body. Every field is optional.
type GatewayResponse struct {
	Kind       ResponseKind
	StatusCode int
	Body       map[string]any
	Raw        json.RawMessage
}

// Link is one entry of the HATEOAS links list.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

const RelApprove = "approve"

func (r *GatewayResponse) IsSoftError() bool {
	return r != nil && r.Kind == ResponseSoftError
}

// String returns a top level field as a string. Numbers are formatted, any
// other type yields "".
func (r *GatewayResponse) String(key string) string {
	if r == nil || r.Body == nil {
		return ""
	}
	switch v := r.Body[key].(type) {
	case string:
		return v
	case float64:
		b, _ := json.Marshal(v)
		return string(b)
	case json.Number:
		return v.String()
	}
	return ""
}

func (r *GatewayResponse) AccessToken() string {
	return strings.TrimSpace(r.String("access_token"))
}

// Links decodes the links list. Entries that are not objects or have no rel
// are skipped.
func (r *GatewayResponse) Links() []Link {
	if r == nil || r.Body == nil {
		return nil
	}
	raw, ok := r.Body["links"].([]any)
	if !ok {
		return nil
	}
	links := make([]Link, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		rel, ok := m["rel"].(string)
		if !ok {
			continue
		}
		href, _ := m["href"].(string)
		method, _ := m["method"].(string)
		links = append(links, Link{Rel: rel, Href: href, Method: method})
	}
	return links
}

// ExtractLink returns the href of the first link whose rel matches (approve
// when rel is empty). A missing links list, no matching rel and a matching
// entry without href all report ok=false.
func ExtractLink(r *GatewayResponse, rel string) (string, bool) {
	if rel == "" {
		rel = RelApprove
	}
	for _, l := range r.Links() {
		if l.Rel != rel {
			continue
		}
		if l.Href == "" {
			return "", false
		}
		return l.Href, true
	}
	return "", false
}
