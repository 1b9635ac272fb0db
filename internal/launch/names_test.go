package launch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/launchtrack/internal/spacex"
)

// fakeSource serves canned collections and per-endpoint errors.
type fakeSource struct {
	rockets   []spacex.Rocket
	pads      []spacex.Launchpad
	upcoming  []spacex.Launch
	past      []spacex.Launch
	rocketErr error
	padErr    error
	launchErr error
}

func (f *fakeSource) Rockets(context.Context) ([]spacex.Rocket, error) {
	if f.rocketErr != nil {
		return nil, f.rocketErr
	}
	return f.rockets, nil
}

func (f *fakeSource) Launchpads(context.Context) ([]spacex.Launchpad, error) {
	if f.padErr != nil {
		return nil, f.padErr
	}
	return f.pads, nil
}

func (f *fakeSource) UpcomingLaunches(context.Context) ([]spacex.Launch, error) {
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return f.upcoming, nil
}

func (f *fakeSource) PastLaunches(context.Context) ([]spacex.Launch, error) {
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return f.past, nil
}

func networkErr(path string) error {
	return &spacex.FetchError{URL: "https://api.example.com/v5" + path, Err: errors.New("connection refused")}
}

func TestPadLabel(t *testing.T) {
	tests := []struct {
		name, pad, locality, region string
		want                        string
	}{
		{"both empty", "SLC 40", "", "", "SLC 40"},
		{"only region", "SLC 40", "", "Florida", "SLC 40 (Florida)"},
		{"only locality", "SLC 40", "Cape Canaveral", "", "SLC 40 (Cape Canaveral)"},
		{"both", "SLC 40", "Cape Canaveral", "Florida", "SLC 40 (Cape Canaveral, Florida)"},
		{"blank parts", "SLC 40", "  ", " ", "SLC 40"},
		{"missing name", "", "Boca Chica", "Texas", "Unknown pad (Boca Chica, Texas)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadLabel(tt.pad, tt.locality, tt.region))
		})
	}
}

func TestRocketNames_SkipsMissingIDAndDefaultsName(t *testing.T) {
	names := RocketNames([]spacex.Rocket{
		{ID: "r1", Name: ptr("Falcon 9")},
		{ID: "r2"},
		{ID: "r3", Name: ptr("")},
		{Name: ptr("Orphan")},
	})
	assert.Equal(t, Names{"r1": "Falcon 9", "r2": UnknownRocket, "r3": UnknownRocket}, names)
}

func TestLaunchpadNames_SkipsMissingID(t *testing.T) {
	names := LaunchpadNames([]spacex.Launchpad{
		{ID: "p1", Name: ptr("KSC LC 39A"), Locality: ptr("Cape Canaveral"), Region: ptr("Florida")},
		{ID: "p2", Name: ptr("VAFB SLC 4E"), Region: ptr("California")},
		{Name: ptr("Nowhere")},
	})
	assert.Equal(t, Names{
		"p1": "KSC LC 39A (Cape Canaveral, Florida)",
		"p2": "VAFB SLC 4E (California)",
	}, names)
}

func TestNamesLookup_Fallbacks(t *testing.T) {
	names := Names{"r1": "Falcon 9"}
	assert.Equal(t, "Falcon 9", names.Lookup("r1", Unknown))
	assert.Equal(t, Unknown, names.Lookup("stale", Unknown))
	assert.Equal(t, UnknownRocket, names.Lookup("", UnknownRocket))

	var zero Names
	assert.Equal(t, Unknown, zero.Lookup("r1", Unknown))
}

func TestLoadRocketNames_FetchFailureYieldsEmptyMapping(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := &fakeSource{rocketErr: networkErr("/rockets")}

	names, err := LoadRocketNames(context.Background(), src, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, spacex.ErrUnavailable)
	require.NotNil(t, names)
	assert.Empty(t, names)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "rockets", hook.LastEntry().Data["collection"])

	// Downstream rendering falls back to Unknown.
	ref := Reference{Rockets: names, Launchpads: Names{}}
	l := Launch{RocketID: "r1", LaunchpadID: "p1"}
	assert.Equal(t, Unknown, ref.RocketName(l))
	assert.Equal(t, Unknown, ref.PadName(l))
	assert.Equal(t, UnknownRocket, Describe(l, ref).Rocket)
	assert.Equal(t, UnknownLaunchpad, Describe(l, ref).Launchpad)
}

func TestLoadLaunchpadNames_NilLoggerIsAllowed(t *testing.T) {
	src := &fakeSource{padErr: networkErr("/launchpads")}
	names, err := LoadLaunchpadNames(context.Background(), src, nil)
	require.Error(t, err)
	assert.Empty(t, names)
}

func TestLoadReference(t *testing.T) {
	src := &fakeSource{
		rockets: []spacex.Rocket{{ID: "r1", Name: ptr("Falcon Heavy")}},
		pads:    []spacex.Launchpad{{ID: "p1", Name: ptr("LC 39A")}},
	}
	ref, err := LoadReference(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, "Falcon Heavy", ref.Rockets.Lookup("r1", Unknown))
	assert.Equal(t, "LC 39A", ref.Launchpads.Lookup("p1", Unknown))

	src.rocketErr = fmt.Errorf("wrapped: %w", networkErr("/rockets"))
	ref, err = LoadReference(context.Background(), src, nil)
	require.Error(t, err)
	assert.Empty(t, ref.Rockets)
	assert.Equal(t, "LC 39A", ref.Launchpads.Lookup("p1", Unknown), "pads still load when rockets fail")
}

func TestDescribeAndRows(t *testing.T) {
	ref := Reference{
		Rockets:    Names{"r1": "Falcon 9"},
		Launchpads: Names{"p1": "SLC 40 (Cape Canaveral, Florida)"},
	}
	launches := []Launch{
		{Name: "Starlink 1", DateUTC: "2024-01-01T00:00:00Z", RocketID: "r1", LaunchpadID: "p1", Outcome: OutcomeSucceeded},
		{RocketID: "gone", LaunchpadID: "gone"},
	}

	rows := Rows(launches, ref)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Index: 1, Mission: "Starlink 1", Date: "2024-01-01 00:00 UTC", Rocket: "Falcon 9", Launchpad: "SLC 40 (Cape Canaveral, Florida)", Outcome: OutcomeSucceeded}, rows[0])
	assert.Equal(t, Row{Index: 2, Mission: NoName, Date: NoTime, Rocket: Unknown, Launchpad: Unknown, Outcome: OutcomeUnknown}, rows[1])

	d := Describe(launches[1], ref)
	assert.Equal(t, NoName, d.Mission)
	assert.Equal(t, NoTime, d.Flight)
	assert.Equal(t, UnknownRocket, d.Rocket)
	assert.Equal(t, UnknownLaunchpad, d.Launchpad)
	assert.Equal(t, NoDescription, d.Description)
	assert.Equal(t, NoLink, d.Webcast)
}
