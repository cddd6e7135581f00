package forms

// States lists the region codes a venue or artist may be located in.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres lists the tags a venue or artist may be labelled with.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock",
	"Rock n Roll",
	"Soul",
	"Other",
}

var (
	stateSet = toSet(States)
	genreSet = toSet(Genres)
)

// IsState reports whether code is one of States.
func IsState(code string) bool {
	_, ok := stateSet[code]
	return ok
}

// IsGenre reports whether tag is one of Genres.
func IsGenre(tag string) bool {
	_, ok := genreSet[tag]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
