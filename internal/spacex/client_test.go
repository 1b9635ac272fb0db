package spacex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, u.String())

	u, err = parseBaseURL("http://example.com:1234/v5/?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234/v5", u.String())

	u, err = parseBaseURL("api.example.com/v4")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "/v4", u.Path)
}

func TestParseBaseURL_MissingHostFails(t *testing.T) {
	_, err := parseBaseURL("http:///v5")
	require.Error(t, err)
}

func TestClient_ResolveKeepsBasePath(t *testing.T) {
	c, err := NewClient("https://api.example.com/v5/", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v5/launches/past", c.resolve("/launches/past"))
	assert.Equal(t, "https://api.example.com/v5/rockets", c.resolve("rockets"))
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}

func TestClient_FetchesEndpointsAndDecodesOptionals(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v5/rockets":
			_, _ = w.Write([]byte(`[{"id":"r1","name":"Falcon 9"},{"id":"r2"}]`))
		case "/v5/launchpads":
			_, _ = w.Write([]byte(`[{"id":"p1","name":"SLC 40","locality":"Cape Canaveral","region":null}]`))
		case "/v5/launches/upcoming":
			_, _ = w.Write([]byte(`[{"id":"l1","name":"Crew-9","date_utc":"2024-09-28T17:17:00.000Z","success":null,"links":{"webcast":null}}]`))
		case "/v5/launches/past":
			_, _ = w.Write([]byte(`[{"id":"l2","flight_number":7,"success":false},{"id":"l3","success":true}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/v5", 2*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	rockets, err := c.Rockets(ctx)
	require.NoError(t, err)
	require.Len(t, rockets, 2)
	assert.Equal(t, "Falcon 9", Str(rockets[0].Name))
	assert.Nil(t, rockets[1].Name)

	pads, err := c.Launchpads(ctx)
	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.Equal(t, "Cape Canaveral", Str(pads[0].Locality))
	assert.Nil(t, pads[0].Region)

	upcoming, err := c.UpcomingLaunches(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Nil(t, upcoming[0].Success)
	require.NotNil(t, upcoming[0].Links)
	assert.Nil(t, upcoming[0].Links.Webcast)

	past, err := c.PastLaunches(ctx)
	require.NoError(t, err)
	require.Len(t, past, 2)
	require.NotNil(t, past[0].Success)
	assert.False(t, *past[0].Success)
	require.NotNil(t, past[0].FlightNumber)
	assert.Equal(t, 7, *past[0].FlightNumber)
	assert.Nil(t, past[1].Links)

	assert.True(t, strings.HasPrefix(gotUserAgent, "launchtrack/"), "User-Agent = %q", gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_EmptyArrayIsNotAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	launches, err := c.UpcomingLaunches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, launches)
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rockets":
			_, _ = w.Write([]byte("{not-json"))
		case "/launchpads":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = c.Rockets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Launchpads(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 500")
	assert.ErrorIs(t, err, ErrUnavailable)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, server.URL+"/launchpads", fe.URL)
}

func TestClient_TimeoutIsUnavailable(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.PastLaunches(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_NetworkFailureIsUnavailable(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1", time.Second)
	require.NoError(t, err)

	rockets, err := c.Rockets(context.Background())
	assert.Nil(t, rockets)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNilClientReturnsFetchError(t *testing.T) {
	var c *Client
	err := c.Get(context.Background(), "/rockets", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "", c.BaseURL())
}

func TestWithUserAgentIgnoresBlank(t *testing.T) {
	c, err := NewClient("", 0, WithUserAgent("  "))
	require.NoError(t, err)
	assert.Equal(t, defaultUserAgent, c.userAgent)
	assert.NotNil(t, c.http)

	c, err = NewClient("", 0, WithUserAgent("custom/1"))
	require.NoError(t, err)
	assert.Equal(t, "custom/1", c.userAgent)
}
