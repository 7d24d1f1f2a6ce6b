package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBoard_Go/internal/auth"
)

const testUserID = "user-1"

// newRequest builds a request, optionally authenticated as testUserID
func newRequest(t *testing.T, method, target string, body interface{}, authenticated bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if authenticated {
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: testUserID, Name: "Tester"}))
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
