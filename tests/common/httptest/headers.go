//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderPresent is for generated values such as request ids.
func AssertHeaderPresent(t *testing.T, w *httptest.ResponseRecorder, keys ...string) {
	t.Helper()
	for _, k := range keys {
		assert.NotEmpty(t, w.Header().Get(k), "header %s missing", k)
	}
}
