package events

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathMismatch is returned when a document path does not fit a binding pattern.
var ErrPathMismatch = errors.New("document path does not match pattern")

const documentsSegment = "/documents/"

// DocumentPath strips the "projects/{p}/databases/{d}/documents/" prefix from a
// full resource name. Relative paths are returned unchanged.
func DocumentPath(name string) string {
	if i := strings.Index(name, documentsSegment); i >= 0 {
		return name[i+len(documentsSegment):]
	}
	return strings.TrimPrefix(name, "/")
}

// MatchPath matches a document path such as "Users/u1/Followers/f1" against a
// pattern such as "Users/{userID}/Followers/{followerID}" and returns the
// wildcard values keyed by name.
func MatchPath(pattern, path string) (map[string]string, error) {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrPathMismatch, path, pattern)
	}

	params := make(map[string]string)
	for i, p := range patternParts {
		seg := pathParts[i]
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPathMismatch, path)
		}
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			params[p[1:len(p)-1]] = seg
			continue
		}
		if p != seg {
			return nil, fmt.Errorf("%w: %q vs %q", ErrPathMismatch, path, pattern)
		}
	}
	return params, nil
}

// Params resolves the path parameters of the event's document: the new
// snapshot's name when present, otherwise the old one.
func (e FirestoreEvent) Params(pattern string) (map[string]string, error) {
	name := e.Value.Name
	if name == "" {
		name = e.OldValue.Name
	}
	if name == "" {
		return nil, ErrNoDocument
	}
	return MatchPath(pattern, DocumentPath(name))
}
