package launch

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/launchtrack/internal/spacex"
)

// Fallbacks for names that cannot be resolved.
const (
	UnknownRocket    = "Unknown rocket"
	UnknownPad       = "Unknown pad"
	UnknownLaunchpad = "Unknown launchpad"
	Unknown          = "Unknown"
)

// Names maps reference ids to display names. The zero value is usable and
// resolves every id to its fallback.
type Names map[string]string

// Lookup returns the name for id, or fallback when id is empty or unknown.
func (n Names) Lookup(id, fallback string) string {
	if id == "" {
		return fallback
	}
	if name, ok := n[id]; ok {
		return name
	}
	return fallback
}

// LoadRocketNames builds the rocket id -> name mapping. On a failed fetch the
// error is logged and an empty mapping is returned alongside it.
func LoadRocketNames(ctx context.Context, src spacex.Source, log logrus.FieldLogger) (Names, error) {
	rockets, err := src.Rockets(ctx)
	if err != nil {
		reportFetch(log, "rockets", err)
		return Names{}, err
	}
	return RocketNames(rockets), nil
}

// RocketNames indexes rockets by id. Entries without an id are skipped and a
// missing name becomes UnknownRocket.
func RocketNames(rockets []spacex.Rocket) Names {
	names := make(Names, len(rockets))
	for _, r := range rockets {
		if r.ID == "" {
			continue
		}
		names[r.ID] = orDefault(spacex.Str(r.Name), UnknownRocket)
	}
	return names
}

// LoadLaunchpadNames builds the launchpad id -> label mapping. On a failed fetch
// the error is logged and an empty mapping is returned alongside it.
func LoadLaunchpadNames(ctx context.Context, src spacex.Source, log logrus.FieldLogger) (Names, error) {
	pads, err := src.Launchpads(ctx)
	if err != nil {
		reportFetch(log, "launchpads", err)
		return Names{}, err
	}
	return LaunchpadNames(pads), nil
}

// LaunchpadNames indexes launchpads by id using PadLabel.
func LaunchpadNames(pads []spacex.Launchpad) Names {
	names := make(Names, len(pads))
	for _, p := range pads {
		if p.ID == "" {
			continue
		}
		names[p.ID] = PadLabel(spacex.Str(p.Name), spacex.Str(p.Locality), spacex.Str(p.Region))
	}
	return names
}

// PadLabel formats a launchpad as "Name (Locality, Region)". Empty parts are
// dropped and the parenthesized suffix is omitted when nothing is left.
func PadLabel(name, locality, region string) string {
	name = orDefault(name, UnknownPad)
	parts := make([]string, 0, 2)
	for _, part := range []string{locality, region} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + " (" + strings.Join(parts, ", ") + ")"
}

// Reference bundles both lookups needed to render launches.
type Reference struct {
	Rockets    Names
	Launchpads Names
}

// LoadReference loads rockets then launchpads. Both mappings are always non-nil;
// the first fetch error, if any, is returned.
func LoadReference(ctx context.Context, src spacex.Source, log logrus.FieldLogger) (Reference, error) {
	rockets, rocketErr := LoadRocketNames(ctx, src, log)
	pads, padErr := LoadLaunchpadNames(ctx, src, log)
	ref := Reference{Rockets: rockets, Launchpads: pads}
	if rocketErr != nil {
		return ref, rocketErr
	}
	return ref, padErr
}

// RocketName resolves the rocket of l for table rows.
func (r Reference) RocketName(l Launch) string {
	return r.Rockets.Lookup(l.RocketID, Unknown)
}

// PadName resolves the launchpad of l for table rows.
func (r Reference) PadName(l Launch) string {
	return r.Launchpads.Lookup(l.LaunchpadID, Unknown)
}

func reportFetch(log logrus.FieldLogger, what string, err error) {
	if log == nil {
		return
	}
	log.WithError(err).WithField("collection", what).Warn("fetch failed, treating as empty")
}
