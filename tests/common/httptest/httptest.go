//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const ownerHeader = "X-User-ID"

// executes HTTP request as the given owner; empty owner sends no X-User-ID header
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, owner string) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		raw = jsonBody
	}
	return perform(router, method, path, raw, body != nil, owner)
}

// sends body verbatim, for malformed payloads
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, body, owner string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(router, method, path, []byte(body), true, owner)
}

func perform(router *gin.Engine, method, path string, body []byte, isJSON bool, owner string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req.Header.Set(ownerHeader, owner)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
