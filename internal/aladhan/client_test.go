package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sheikhupura   = Location{City: "Sheikhupura", Country: "Pakistan"}
	karachiHanafi = Calculation{Method: 1, School: 1}
)

const successBody = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {"Fajr": "05:12 (PKT)", "Sunrise": "06:30", "Dhuhr": "12:05", "Asr": "15:40", "Maghrib": "17:48", "Isha": "19:10"},
    "date": {"readable": "16 Oct 2026", "hijri": {"date": "04-05-1448", "day": "04", "month": {"number": 5, "en": "Jumādá al-ūlá"}, "year": "1448"}}
  }
}`

func TestFetchTimingsSendsQuery(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(successBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0)
	resp, err := c.FetchTimings(context.Background(), sheikhupura, karachiHanafi)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/timingsByCity", got.URL.Path)
	assert.Equal(t, "Sheikhupura", got.URL.Query().Get("city"))
	assert.Equal(t, "Pakistan", got.URL.Query().Get("country"))
	assert.Equal(t, "1", got.URL.Query().Get("method"))
	assert.Equal(t, "1", got.URL.Query().Get("school"))

	assert.Equal(t, 200, resp.Code)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "05:12 (PKT)", resp.Data.Timings["Fajr"])
	require.NotNil(t, resp.Data.Date)
	require.NotNil(t, resp.Data.Date.Hijri)
	assert.Equal(t, "1448", resp.Data.Date.Hijri.Year)
	assert.Equal(t, "Jumādá al-ūlá", resp.Data.Date.Hijri.Month.En)
}

func TestFetchTimingsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).FetchTimings(context.Background(), sheikhupura, karachiHanafi)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestFetchTimingsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).FetchTimings(context.Background(), sheikhupura, karachiHanafi)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestFetchTimingsMissingData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 500, "status": "error"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 0).FetchTimings(context.Background(), sheikhupura, karachiHanafi)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestFetchTimingsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).FetchTimings(context.Background(), sheikhupura, karachiHanafi)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestTimingsURLEncodesLocation(t *testing.T) {
	c := NewClient("", 0)
	u := c.TimingsURL(Location{City: "Rahim Yar Khan", Country: "Pakistan"}, Calculation{Method: 1, School: 0})
	assert.Equal(t,
		"https://api.aladhan.com/v1/timingsByCity?city=Rahim+Yar+Khan&country=Pakistan&method=1&school=0",
		u,
	)
}
