package launch

import (
	"strconv"

	"github.com/five82/launchtrack/internal/spacex"
)

// Placeholders used when the API leaves a field out.
const (
	NoName        = "(no name)"
	NoDescription = "No description provided."
	NoLink        = "N/A"
	NoTime        = "—"
)

// Outcome is the tri-state result of a launch.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

// OutcomeOf maps the API's optional success flag. A nil flag stays unknown:
// pending and incomplete records are neither successes nor failures.
func OutcomeOf(success *bool) Outcome {
	switch {
	case success == nil:
		return OutcomeUnknown
	case *success:
		return OutcomeSucceeded
	default:
		return OutcomeFailed
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Label is the long form shown in the detail view.
func (o Outcome) Label() string {
	switch o {
	case OutcomeSucceeded:
		return "Success"
	case OutcomeFailed:
		return "Failure"
	default:
		return "Unknown / upcoming"
	}
}

// Symbol is the single-cell form shown in tables.
func (o Outcome) Symbol() string {
	switch o {
	case OutcomeSucceeded:
		return "✔"
	case OutcomeFailed:
		return "✖"
	default:
		return "?"
	}
}

// Links holds the optional external references of a launch. Empty means absent.
type Links struct {
	Webcast   string
	Article   string
	Wikipedia string
}

// WebcastOrNA returns the webcast link or NoLink.
func (l Links) WebcastOrNA() string { return orDefault(l.Webcast, NoLink) }

// ArticleOrNA returns the article link or NoLink.
func (l Links) ArticleOrNA() string { return orDefault(l.Article, NoLink) }

// WikipediaOrNA returns the Wikipedia link or NoLink.
func (l Links) WikipediaOrNA() string { return orDefault(l.Wikipedia, NoLink) }

// Launch is one normalized mission record. Values are never mutated after
// FromAPI builds them.
type Launch struct {
	ID           string
	FlightNumber *int
	Name         string // raw name; empty when the API omitted it
	DateUTC      string // raw ISO-8601 timestamp; empty when absent
	RocketID     string
	LaunchpadID  string
	Outcome      Outcome
	Details      string
	Upcoming     bool
	Links        Links
}

// FromAPI converts a decoded wire record into a Launch.
func FromAPI(in spacex.Launch) Launch {
	out := Launch{
		ID:          in.ID,
		Name:        spacex.Str(in.Name),
		DateUTC:     spacex.Str(in.DateUTC),
		RocketID:    spacex.Str(in.Rocket),
		LaunchpadID: spacex.Str(in.Launchpad),
		Outcome:     OutcomeOf(in.Success),
		Details:     spacex.Str(in.Details),
		Upcoming:    in.Upcoming != nil && *in.Upcoming,
	}
	if in.FlightNumber != nil {
		n := *in.FlightNumber
		out.FlightNumber = &n
	}
	if in.Links != nil {
		out.Links = Links{
			Webcast:   spacex.Str(in.Links.Webcast),
			Article:   spacex.Str(in.Links.Article),
			Wikipedia: spacex.Str(in.Links.Wikipedia),
		}
	}
	return out
}

// FromAPIList converts a slice of wire records, always returning a non-nil slice.
func FromAPIList(in []spacex.Launch) []Launch {
	out := make([]Launch, 0, len(in))
	for _, l := range in {
		out = append(out, FromAPI(l))
	}
	return out
}

// DisplayName returns the mission name or NoName.
func (l Launch) DisplayName() string {
	return orDefault(l.Name, NoName)
}

// Description returns the free-text details or NoDescription.
func (l Launch) Description() string {
	return orDefault(l.Details, NoDescription)
}

// FlightLabel returns the flight number or NoTime when the API has none.
func (l Launch) FlightLabel() string {
	if l.FlightNumber == nil {
		return NoTime
	}
	return strconv.Itoa(*l.FlightNumber)
}

// When returns the formatted launch timestamp.
func (l Launch) When() string {
	return FormatTime(l.DateUTC)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
