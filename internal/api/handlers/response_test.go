package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "слот занят"}, body)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"fade"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "fade", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"fade","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestParseUUID(t *testing.T) {
	_, err := ParseUUID("00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)

	_, err = ParseUUID("42")
	assert.Error(t, err)

	id, err := ParseUUID("3a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, "3a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d", id.String())
}
