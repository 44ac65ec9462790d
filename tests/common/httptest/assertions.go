//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertRejection checks a cart rejection: status, detail.reason and the unchanged cart it carries.
func AssertRejection(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedReason string) map[string]any {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var body struct {
		Detail struct {
			Reason string         `json:"reason"`
			Cart   map[string]any `json:"cart"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode rejection JSON: %s", w.Body.String())
	assert.Equal(t, expectedReason, body.Detail.Reason)
	return body.Detail.Cart
}
