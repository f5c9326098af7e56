package course

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/harmoni-music/validate"
)

func TestValidate(t *testing.T) {
	valid := Defaults()[0]
	if err := valid.Validate(); err != nil {
		t.Fatalf("default course rejected: %v", err)
	}

	tests := map[string]func(c *Course){
		"missing title":      func(c *Course) { c.Title = "" },
		"unknown level":      func(c *Course) { c.Level = "Pemula" },
		"unknown instrument": func(c *Course) { c.Instrument = "Flute" },
		"negative price":     func(c *Course) { c.Price = -1 },
		"rating above five":  func(c *Course) { c.Rating = 5.5 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			if err := c.Validate(); !errors.Is(err, validate.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestDefaultsAreValid(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range Defaults() {
		if err := c.Validate(); err != nil {
			t.Errorf("course[%d]: %v", c.ID, err)
		}
		if seen[c.ID] {
			t.Errorf("duplicated id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCourseNewRequiresPrice(t *testing.T) {
	cn := CourseNew{Title: "Cello", Instructor: "Ana", Level: LevelBeginner, Instrument: InstrumentViolin}
	if err := validate.Check(cn); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected missing price to be rejected, got %v", err)
	}

	free := 0
	cn.Price = &free
	if err := validate.Check(cn); err != nil {
		t.Fatalf("a zero price is a price: %v", err)
	}

	c := cn.Course()
	if c.ID != 0 || c.Students != 0 || c.Rating != 0 {
		t.Fatalf("new course must start empty, got %+v", c)
	}
}

func TestApplyKeepsStats(t *testing.T) {
	c := Defaults()[0]

	title := "Piano Basics"
	price := 900000
	got := CourseUp{Title: &title, Price: &price}.Apply(c)

	exp := c
	exp.Title = title
	exp.Price = price
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	courses := Defaults()

	ids := func(cs []Course) []int {
		out := []int{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	tests := map[string]struct {
		query url.Values
		exp   []int
	}{
		"no criteria":          {url.Values{}, []int{1, 2, 3, 4, 5}},
		"all is no criterion":  {url.Values{"instrument": {"all"}, "level": {"all"}}, []int{1, 2, 3, 4, 5}},
		"search by title":      {url.Values{"search": {"PIANO"}}, []int{1}},
		"search by instructor": {url.Values{"search": {"chen"}}, []int{2}},
		"instrument":           {url.Values{"instrument": {InstrumentDrum}}, []int{4}},
		"level":                {url.Values{"level": {LevelIntermediate}}, []int{4, 5}},
		"combined":             {url.Values{"level": {LevelIntermediate}, "search": {"jazz"}}, []int{5}},
		"no match":             {url.Values{"search": {"tuba"}}, []int{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ids(FilterFromQuery(tc.query).Apply(courses))
			if diff := cmp.Diff(tc.exp, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}
