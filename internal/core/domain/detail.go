package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// GenericErrorMessage is used when an error response carries no usable detail.
const GenericErrorMessage = "Something went wrong"

// DetailKind tags the shape of the "detail" field of an API error body.
type DetailKind string

const (
	DetailNone   DetailKind = "none"
	DetailString DetailKind = "string"
	DetailList   DetailKind = "list"
	// DetailObject covers objects and any other non-string scalar; it is
	// rendered as compact JSON.
	DetailObject DetailKind = "object"
)

// ErrorDetail is the parsed form of an error body's "detail" field.
type ErrorDetail struct {
	Kind  DetailKind
	Text  string
	Items []json.RawMessage
	Raw   json.RawMessage
}

// ParseErrorDetail extracts and classifies the "detail" field from a raw
// response body. Bodies that are not a JSON object, or that have an empty or
// falsy detail, yield DetailNone.
func ParseErrorDetail(body []byte) ErrorDetail {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ErrorDetail{Kind: DetailNone}
	}

	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 {
		return ErrorDetail{Kind: DetailNone}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return ErrorDetail{Kind: DetailNone}
		}
		return ErrorDetail{Kind: DetailString, Text: s, Raw: raw}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return ErrorDetail{Kind: DetailNone}
		}
		return ErrorDetail{Kind: DetailList, Items: items, Raw: raw}
	case '{':
		return ErrorDetail{Kind: DetailObject, Raw: raw}
	}

	if isFalsy(raw) {
		return ErrorDetail{Kind: DetailNone}
	}
	return ErrorDetail{Kind: DetailObject, Raw: raw}
}

// Message renders the detail as a single human-readable line.
func (d ErrorDetail) Message() string {
	switch d.Kind {
	case DetailString:
		return d.Text
	case DetailList:
		msgs := make([]string, 0, len(d.Items))
		for _, item := range d.Items {
			msgs = append(msgs, itemMessage(item))
		}
		if len(msgs) == 0 {
			return GenericErrorMessage
		}
		return strings.Join(msgs, ", ")
	case DetailObject:
		return compactJSON(d.Raw)
	default:
		return GenericErrorMessage
	}
}

// itemMessage returns the entry's "msg" when it is set, otherwise the entry
// itself as compact JSON.
func itemMessage(item json.RawMessage) string {
	var entry map[string]json.RawMessage
	if err := json.Unmarshal(item, &entry); err == nil {
		if msg, ok := entry["msg"]; ok && !isFalsy(bytes.TrimSpace(msg)) {
			var s string
			if err := json.Unmarshal(msg, &s); err == nil {
				return s
			}
			return compactJSON(msg)
		}
	}
	return compactJSON(item)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func isFalsy(raw []byte) bool {
	switch string(raw) {
	case "", "null", "false", `""`:
		return true
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == 0 {
		return true
	}
	return false
}
