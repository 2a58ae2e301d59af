package payload

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	maxLimit     = 100
	maxOffset    = 100000
)

// Page is the resolved pagination window of a list request.
type Page struct {
	Limit  int
	Offset int
}

// SafeParseInt parses a query integer leniently: garbage falls back to the
// default, out-of-range values clamp to the bounds. List endpoints never
// reject a request over pagination noise.
func SafeParseInt(value string, def, min, max int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	if parsed < min {
		return min
	}
	if parsed > max {
		return max
	}
	return parsed
}

// ParsePage resolves limit and offset from the request query.
func ParsePage(c *gin.Context) Page {
	return Page{
		Limit:  SafeParseInt(c.Query("limit"), defaultLimit, 1, maxLimit),
		Offset: SafeParseInt(c.Query("offset"), 0, 0, maxOffset),
	}
}

// ParseSort resolves the sort query parameter against a whitelist; anything
// unrecognized falls back to the first option.
func ParseSort(c *gin.Context, options ...string) string {
	sort := c.Query("sort")
	for _, opt := range options {
		if sort == opt {
			return sort
		}
	}
	return options[0]
}
