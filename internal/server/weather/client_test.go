package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/weatherhub/internal/common"
)

func TestCurrent_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Errorf("unexpected location: %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("unexpected api key: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cod": 200,
			"main": {"temp": 10.5, "humidity": 81},
			"wind": {"speed": 4.1},
			"weather": [{"description": "light rain"}]
		}`))
	}))
	defer srv.Close()

	c := NewOpenWeatherMapClient(srv.URL, "test-key", srv.Client())

	report, err := c.Current(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if report.Temperature != 10.5 || report.Humidity != 81 || report.WindSpeed != 4.1 || report.Condition != "light rain" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestCurrent_LocationError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the provider sends cod as a string on errors
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	c := NewOpenWeatherMapClient(srv.URL, "test-key", srv.Client())

	_, err := c.Current(context.Background(), "Nowhere")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
	if err.Error() != "city not found" {
		t.Fatalf("expected provider message as error text, got %q", err.Error())
	}
}

func TestCurrent_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewOpenWeatherMapClient(srv.URL, "test-key", nil)

	_, err := c.Current(context.Background(), "Paris")
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("expected common.ErrorUpstream, got %v", err)
	}
}

func TestCurrent_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewOpenWeatherMapClient(srv.URL, "test-key", srv.Client())

	_, err := c.Current(context.Background(), "Paris")
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("expected common.ErrorUpstream, got %v", err)
	}
}
