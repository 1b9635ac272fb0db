package spacex

// Launch mirrors one entry of /launches/upcoming and /launches/past.
// Optional fields are pointers so a missing key and an explicit null both decode to nil.
type Launch struct {
	ID           string  `json:"id"`
	FlightNumber *int    `json:"flight_number"`
	Name         *string `json:"name"`
	DateUTC      *string `json:"date_utc"`
	Rocket       *string `json:"rocket"`
	Launchpad    *string `json:"launchpad"`
	Success      *bool   `json:"success"`
	Details      *string `json:"details"`
	Upcoming     *bool   `json:"upcoming"`
	Links        *Links  `json:"links"`
}

// Links groups the external references attached to a launch.
type Links struct {
	Webcast   *string `json:"webcast"`
	Article   *string `json:"article"`
	Wikipedia *string `json:"wikipedia"`
}

// Rocket mirrors one entry of /rockets.
type Rocket struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// Launchpad mirrors one entry of /launchpads.
type Launchpad struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	FullName *string `json:"full_name"`
	Locality *string `json:"locality"`
	Region   *string `json:"region"`
}

// Str dereferences an optional string, returning "" for nil.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
