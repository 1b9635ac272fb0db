package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/launchtrack/internal/spacex"
)

func ptr[T any](v T) *T { return &v }

func TestOutcomeOf_TriState(t *testing.T) {
	tests := []struct {
		name    string
		success *bool
		want    Outcome
		text    string
		label   string
		symbol  string
	}{
		{"true", ptr(true), OutcomeSucceeded, "succeeded", "Success", "✔"},
		{"false", ptr(false), OutcomeFailed, "failed", "Failure", "✖"},
		{"absent", nil, OutcomeUnknown, "unknown", "Unknown / upcoming", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutcomeOf(tt.success)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, tt.symbol, got.Symbol())
		})
	}

	seen := map[string]bool{}
	for _, o := range []Outcome{OutcomeSucceeded, OutcomeFailed, OutcomeUnknown} {
		seen[o.String()] = true
	}
	assert.Len(t, seen, 3, "outcomes must be distinguishable")
}

func TestFromAPI_DefaultsMissingFields(t *testing.T) {
	l := FromAPI(spacex.Launch{ID: "x"})

	assert.Equal(t, NoName, l.DisplayName())
	assert.Equal(t, "", l.Name)
	assert.Equal(t, NoDescription, l.Description())
	assert.Equal(t, NoTime, l.When())
	assert.Equal(t, NoTime, l.FlightLabel())
	assert.Equal(t, OutcomeUnknown, l.Outcome)
	assert.Equal(t, NoLink, l.Links.WebcastOrNA())
	assert.Equal(t, NoLink, l.Links.ArticleOrNA())
	assert.Equal(t, NoLink, l.Links.WikipediaOrNA())
	assert.False(t, l.Upcoming)
}

func TestFromAPI_WhitespaceNameIsKept(t *testing.T) {
	name := " "
	l := FromAPI(spacex.Launch{ID: "x", Name: &name})

	assert.Equal(t, " ", l.DisplayName())
	assert.Equal(t, "Pad", PadLabel("Pad", " ", ""))
}

func TestFromAPI_CopiesPresentFields(t *testing.T) {
	in := spacex.Launch{
		ID:           "l1",
		FlightNumber: ptr(42),
		Name:         ptr("CRS-20"),
		DateUTC:      ptr("2020-03-07T04:50:31.000Z"),
		Rocket:       ptr("r1"),
		Launchpad:    ptr("p1"),
		Success:      ptr(true),
		Details:      ptr("Last Dragon 1 flight."),
		Upcoming:     ptr(false),
		Links: &spacex.Links{
			Webcast:   ptr("https://youtu.be/1"),
			Article:   nil,
			Wikipedia: ptr(""),
		},
	}
	l := FromAPI(in)

	assert.Equal(t, "CRS-20", l.DisplayName())
	assert.Equal(t, "42", l.FlightLabel())
	assert.Equal(t, "2020-03-07 04:50 UTC", l.When())
	assert.Equal(t, "r1", l.RocketID)
	assert.Equal(t, "p1", l.LaunchpadID)
	assert.Equal(t, OutcomeSucceeded, l.Outcome)
	assert.Equal(t, "Last Dragon 1 flight.", l.Description())
	assert.Equal(t, "https://youtu.be/1", l.Links.WebcastOrNA())
	assert.Equal(t, NoLink, l.Links.ArticleOrNA())
	assert.Equal(t, NoLink, l.Links.WikipediaOrNA())

	// The flight number is copied, not aliased.
	*in.FlightNumber = 7
	assert.Equal(t, "42", l.FlightLabel())
}

func TestFromAPIList_NeverNil(t *testing.T) {
	got := FromAPIList(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absent", "", "—"},
		{"zulu", "2024-03-01T12:00:00Z", "2024-03-01 12:00 UTC"},
		{"explicit offset", "2024-03-01T12:00:00+00:00", "2024-03-01 12:00 UTC"},
		{"millis", "2006-03-24T22:30:00.000Z", "2006-03-24 22:30 UTC"},
		{"naive", "2024-03-01T12:00:00", "2024-03-01 12:00 UTC"},
		{"date only", "2024-03-01", "2024-03-01 00:00 UTC"},
		{"garbage passes through", "soon(ish)", "soon(ish)"},
		{"partial passes through", "2024-13-45T99:00:00Z", "2024-13-45T99:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.raw))
		})
	}
}

func TestFormatTime_ZuluMatchesOffset(t *testing.T) {
	assert.Equal(t, FormatTime("2024-03-01T12:00:00+00:00"), FormatTime("2024-03-01T12:00:00Z"))
}

func TestParseTime_Blank(t *testing.T) {
	_, ok := ParseTime("   ")
	assert.False(t, ok)
}
