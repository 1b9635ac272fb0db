package launch

// Detail is the fully resolved, display-ready view of one launch.
type Detail struct {
	Mission     string
	Flight      string
	Date        string
	Rocket      string
	Launchpad   string
	Outcome     Outcome
	Description string
	Webcast     string
	Article     string
	Wikipedia   string
}

// Describe resolves every field of l, substituting placeholders for anything
// the API or the reference data could not provide.
func Describe(l Launch, ref Reference) Detail {
	return Detail{
		Mission:     l.DisplayName(),
		Flight:      l.FlightLabel(),
		Date:        l.When(),
		Rocket:      ref.Rockets.Lookup(l.RocketID, UnknownRocket),
		Launchpad:   ref.Launchpads.Lookup(l.LaunchpadID, UnknownLaunchpad),
		Outcome:     l.Outcome,
		Description: l.Description(),
		Webcast:     l.Links.WebcastOrNA(),
		Article:     l.Links.ArticleOrNA(),
		Wikipedia:   l.Links.WikipediaOrNA(),
	}
}

// Row is one table line for a launch listing.
type Row struct {
	Index     int
	Mission   string
	Date      string
	Rocket    string
	Launchpad string
	Outcome   Outcome
}

// Rows builds 1-based table rows for launches.
func Rows(launches []Launch, ref Reference) []Row {
	rows := make([]Row, 0, len(launches))
	for i, l := range launches {
		rows = append(rows, Row{
			Index:     i + 1,
			Mission:   l.DisplayName(),
			Date:      l.When(),
			Rocket:    ref.RocketName(l),
			Launchpad: ref.PadName(l),
			Outcome:   l.Outcome,
		})
	}
	return rows
}
