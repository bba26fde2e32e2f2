package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	observed []observation
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.observed = append(m.observed, observation{method: method, route: route, status: status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	metrics := &recordingMetrics{}

	router := mux.NewRouter()
	router.Use(Metrics(metrics))
	router.HandleFunc("/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	router.HandleFunc("/slots", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/reservations/abc", "/slots"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, metrics.observed, 2)
	assert.Equal(t, observation{method: "GET", route: "/reservations/{id}", status: http.StatusNotFound}, metrics.observed[0])
	assert.Equal(t, observation{method: "GET", route: "/slots", status: http.StatusOK}, metrics.observed[1])
}
