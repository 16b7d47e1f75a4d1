package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// The server is closed on test cleanup.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// DoJSON sends a request with body marshalled as JSON. A nil body sends no
// body, a string or []byte body is sent verbatim. The response body is
// closed on test cleanup.
func DoJSON(t *testing.T, server *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case []byte:
		reader = bytes.NewBuffer(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Request %s %s failed", method, path)
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	})
	return resp
}

// DecodeJSONResponse asserts the status code and decodes the response body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.Equal(t, expectedStatus, resp.StatusCode, "Unexpected status, body: %s", string(body))
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse checks that a response contains an error with the
// expected status code, a message containing expectedErrorMsgPart and a trace ID.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, resp, expectedStatus, &errResp)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
	assert.Len(t, errResp.TraceID, 32, "Error response should carry a trace ID")
}
