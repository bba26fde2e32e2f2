package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Jane"}`},
		{name: "unknown field", body: `{"name":"Jane","extra":1}`, wantErr: true},
		{name: "trailing object", body: `{"name":"Jane"}{"name":"Joe"}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSON(r, &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Jane", dst.Name)
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondNotFound(w, "бронирование не найдено")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "бронирование не найдено"}, body)
}

func TestRespondConflict(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "столы заняты", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"столы заняты","conflictingTableIds":[]}`, w.Body.String())
}

func TestParseOptionalDate(t *testing.T) {
	date, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseOptionalDate("2025-06-05")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseOptionalDate("05.06.2025")
	assert.Error(t, err)
}

func TestParseReservationID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "canonical", raw: "6f1c2a5e-3b7d-4c8e-9a0f-1d2e3f4a5b6c", want: "6f1c2a5e-3b7d-4c8e-9a0f-1d2e3f4a5b6c"},
		{name: "upper case", raw: "6F1C2A5E-3B7D-4C8E-9A0F-1D2E3F4A5B6C", want: "6f1c2a5e-3b7d-4c8e-9a0f-1d2e3f4a5b6c"},
		{name: "not a uuid", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})

			got, err := ParseReservationID(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
