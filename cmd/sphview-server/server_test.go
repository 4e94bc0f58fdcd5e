package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acousticlab/soundfield.view/internal/coeffio"
)

// testSet covers order 3 (16 harmonics) across 2 frequency bins with a
// non-constant directional pattern.
func testSet() *coeffio.Set {
	coeffs := make([][]coeffio.Complex, 16)
	for i := range coeffs {
		coeffs[i] = []coeffio.Complex{
			{float64(i%3) + 0.5, float64(i % 2)},
			{1 - float64(i)/16, 0.25},
		}
	}
	filters := make([][]coeffio.Complex, 4)
	for i := range filters {
		filters[i] = []coeffio.Complex{{1, 0}, {0.5, float64(i) / 4}}
	}
	return &coeffio.Set{Coefficients: coeffs, RadialFilters: filters}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(testSet())
	require.NoError(t, err)
	return s
}

func TestNewServerRejectsBadSet(t *testing.T) {
	t.Parallel()

	_, err := NewServer(&coeffio.Set{})
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestViewRendersHTML(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view?style=scatter", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-View-ID"))
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestViewDefaultsToSphere(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "soundfield sphere view")
}

func TestViewRejectsUnknownStyle(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view?style=donut", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "donut")
}

func TestViewFlatStyleUnprocessable(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view?style=flat", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "not implemented")
}

func TestViewRejectsBadParams(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for _, target := range []string{
		"/view?colorize=maybe",
		"/view?offset=abc",
		"/view?scale=abc",
		"/view?order=abc",
		"/view?kr=abc",
	} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestViewOrderBeyondCoefficients(t *testing.T) {
	t.Parallel()

	// 16 harmonics serve order 3; order 4 needs 25.
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view?order=4", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewKRIndexOutOfRange(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view?kr=5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "kr index")
}
