package providers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetricsRouter(t *testing.T) {
	done := observeRequest(MuseumViewMethod)
	done()
	observeEvent("hover")

	srv := httptest.NewServer(MetricsRouter())
	defer srv.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/health", http.StatusOK, "ok"},
		{"/metrics", http.StatusOK, `familymuseum_requests_total{method="museum/view"}`},
		{"/metrics", http.StatusOK, `familymuseum_events_total{event="hover"}`},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		res, err := http.Get(srv.URL + test.path)

		if err != nil {
			t.Fatal(err)
		}

		body, err := io.ReadAll(res.Body)
		_ = res.Body.Close()

		if err != nil {
			t.Fatal(err)
		}

		if res.StatusCode != test.status {
			t.Errorf("%s status = %d", test.path, res.StatusCode)
		}

		if !strings.Contains(string(body), test.body) {
			t.Errorf("%s body does not contain %s", test.path, test.body)
		}
	}
}
