package common

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// LimitOffset extracts limit/offset pagination from the request, clamping
// the limit to max and refusing negative offsets.
func LimitOffset(r *http.Request, defaultLimit, max int) (limit, offset int) {
	limit = QueryInt(r, "limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > max {
		limit = max
	}
	offset = QueryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
