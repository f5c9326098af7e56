package course

import (
	"net/url"
	"strings"
)

type Filter struct {
	Search     string
	Instrument string
	Level      string
}

// FilterFromQuery reads search, instrument and level. "all" or an empty
// value disables a criterion.
func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Search:     strings.TrimSpace(q.Get("search")),
		Instrument: q.Get("instrument"),
		Level:      q.Get("level"),
	}
	if f.Instrument == "all" {
		f.Instrument = ""
	}
	if f.Level == "all" {
		f.Level = ""
	}
	return f
}

// Apply keeps the courses matching every criterion, in their original order.
// Search matches title or instructor, ignoring case.
func (f Filter) Apply(courses []Course) []Course {
	search := strings.ToLower(f.Search)

	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Instructor), search) {
			continue
		}
		if f.Instrument != "" && c.Instrument != f.Instrument {
			continue
		}
		if f.Level != "" && c.Level != f.Level {
			continue
		}
		out = append(out, c)
	}
	return out
}
