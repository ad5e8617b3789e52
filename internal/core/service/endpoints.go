package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// path joins a fixed prefix with escaped path segments.
func path(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func withQuery(p string, q url.Values) string {
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func getRaw(ctx context.Context, api ports.API, op, p string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := api.Get(ctx, p, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func postRaw(ctx context.Context, api ports.API, op, p string, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := api.Post(ctx, p, body, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func patchRaw(ctx context.Context, api ports.API, op, p string, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := api.Patch(ctx, p, body, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func putRaw(ctx context.Context, api ports.API, op, p string, body any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := api.Put(ctx, p, body, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func deleteRaw(ctx context.Context, api ports.API, op, p string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := api.Delete(ctx, p, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}
