package taskapi

import (
	"encoding/json"
	"strings"

	"tdo/internal/service"
)

// The backend's response envelope drifted across iterations: collections
// arrive as a bare array or wrapped under "data", "Data", or the resource's
// own key, and token/error fields come in several spellings. Each accepted
// shape is a predicate+extractor pair, tried in a fixed order, so the
// precedence is testable in isolation.

// zeroProjectID is the backend's default ObjectID. A task carrying it has
// no project; it must never be displayed or compared as a real project id.
const zeroProjectID = "000000000000000000000000"

// envelope is a loosely parsed JSON object root.
type envelope map[string]json.RawMessage

// envelopeMatch extracts a payload from one accepted response shape.
// root is nil when the body is not a JSON object.
type envelopeMatch func(root envelope, body []byte) (json.RawMessage, bool)

// bareArray matches a response whose root is the collection itself.
func bareArray() envelopeMatch {
	return func(_ envelope, body []byte) (json.RawMessage, bool) {
		if isArray(body) {
			return body, true
		}
		return nil, false
	}
}

// arrayUnder matches a collection wrapped under the given key.
func arrayUnder(key string) envelopeMatch {
	return func(root envelope, _ []byte) (json.RawMessage, bool) {
		raw, ok := root[key]
		if !ok || !isArray(raw) {
			return nil, false
		}
		return raw, true
	}
}

// objectUnder matches a single object wrapped under the given key.
func objectUnder(key string) envelopeMatch {
	return func(root envelope, _ []byte) (json.RawMessage, bool) {
		raw, ok := root[key]
		if !ok || !isObject(raw) {
			return nil, false
		}
		return raw, true
	}
}

// bareObject matches a response whose root is the object itself.
func bareObject() envelopeMatch {
	return func(_ envelope, body []byte) (json.RawMessage, bool) {
		if isObject(body) {
			return body, true
		}
		return nil, false
	}
}

// collectionShapes is the accepted envelope precedence for collections:
// bare array, "data", "Data", then the resource's own key ("tasks" or
// "projects"). First match wins.
func collectionShapes(resourceKey string) []envelopeMatch {
	return []envelopeMatch{
		bareArray(),
		arrayUnder("data"),
		arrayUnder("Data"),
		arrayUnder(resourceKey),
	}
}

// objectShapes is the accepted envelope precedence for single resources:
// "data", the resource's own key ("task" or "project"), then the bare root.
func objectShapes(resourceKey string) []envelopeMatch {
	return []envelopeMatch{
		objectUnder("data"),
		objectUnder(resourceKey),
		bareObject(),
	}
}

// decodeCollection extracts the raw collection from a response body.
func decodeCollection(body []byte, resourceKey string) (json.RawMessage, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}
	for _, match := range collectionShapes(resourceKey) {
		if items, ok := match(root, body); ok {
			return items, nil
		}
	}
	return nil, &service.ValidationError{Reason: "unrecognized response shape"}
}

// decodeObject extracts the raw resource object from a response body.
func decodeObject(body []byte, resourceKey string) (json.RawMessage, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}
	for _, match := range objectShapes(resourceKey) {
		if obj, ok := match(root, body); ok {
			return obj, nil
		}
	}
	return nil, &service.ValidationError{Reason: "unrecognized response shape"}
}

// parseRoot parses an object root. Non-object bodies yield a nil envelope;
// bodies that are not JSON at all are a ValidationError.
func parseRoot(body []byte) (envelope, error) {
	if !isObject(body) {
		if !json.Valid(body) {
			return nil, &service.ValidationError{Reason: "malformed response body"}
		}
		return nil, nil
	}
	var root envelope
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &service.ValidationError{Reason: "malformed response body"}
	}
	return root, nil
}

// tokenKeys are the token field spellings observed across backend
// iterations, in precedence order.
var tokenKeys = []string{"token", "access_token", "accessToken", "AccessToken"}

// extractToken pulls a bearer token out of an auth response. Each known
// field name is tried on the root, then one level down under "data".
func extractToken(body []byte) string {
	root, err := parseRoot(body)
	if err != nil || root == nil {
		return ""
	}
	if tok := tokenFrom(root); tok != "" {
		return tok
	}
	if raw, ok := root["data"]; ok && isObject(raw) {
		var nested envelope
		if err := json.Unmarshal(raw, &nested); err == nil {
			return tokenFrom(nested)
		}
	}
	return ""
}

func tokenFrom(root envelope) string {
	for _, key := range tokenKeys {
		raw, ok := root[key]
		if !ok {
			continue
		}
		var tok string
		if err := json.Unmarshal(raw, &tok); err == nil && tok != "" {
			return tok
		}
	}
	return ""
}

// messageKeys are the error-message field spellings, in precedence order.
var messageKeys = []string{"message", "error", "errors"}

// extractMessage pulls a human-readable error message out of a response
// body, falling back to the supplied generic message.
func extractMessage(body []byte, fallback string) string {
	root, err := parseRoot(body)
	if err != nil || root == nil {
		return fallback
	}
	for _, key := range messageKeys {
		raw, ok := root[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return fallback
}

// isArray reports whether raw starts a JSON array.
func isArray(raw []byte) bool { return firstByte(raw) == '[' }

// isObject reports whether raw starts a JSON object.
func isObject(raw []byte) bool { return firstByte(raw) == '{' }

func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}
