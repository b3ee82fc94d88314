package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// decodeBody reads the JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pageParams reads page and limit, falling back to the defaults on
// missing, malformed or non-positive values.
func pageParams(query url.Values) (int, int) {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}

	return page, limit
}

// truthy mirrors how a JSON client treats a loosely typed flag.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// flag stores a truthy value as 1 and anything else as 0.
func flag(v interface{}) int {
	if truthy(v) {
		return 1
	}
	return 0
}

// textValue renders a decoded JSON value the way a JSON client would
// stringify it: numbers without exponent, objects as JSON.
func textValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// columnValue converts a decoded JSON value into something a SQL driver binds.
func columnValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, string, bool, float64:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		return string(b)
	}
}
