package course

import "github.com/irsalhamdi/harmoni-music/validate"

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

const (
	InstrumentPiano     = "Piano"
	InstrumentGuitar    = "Guitar"
	InstrumentViolin    = "Violin"
	InstrumentDrum      = "Drum"
	InstrumentSaxophone = "Saxophone"
)

type Course struct {
	ID          int     `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Instructor  string  `json:"instructor" validate:"required"`
	Level       string  `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Instrument  string  `json:"instrument" validate:"required,oneof=Piano Guitar Violin Drum Saxophone"`
	Price       int     `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Students    int     `json:"students" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (c Course) EntityID() int { return c.ID }

func (c Course) WithID(id int) Course {
	c.ID = id
	return c
}

func (c Course) Validate() error {
	return validate.Check(c)
}

type CourseNew struct {
	Title       string `json:"title" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Instrument  string `json:"instrument" validate:"required"`
	Price       *int   `json:"price" validate:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Course builds a course with no enrolments and no rating yet.
func (cn CourseNew) Course() Course {
	return Course{
		Title:       cn.Title,
		Instructor:  cn.Instructor,
		Level:       cn.Level,
		Instrument:  cn.Instrument,
		Price:       *cn.Price,
		Duration:    cn.Duration,
		Description: cn.Description,
		Image:       cn.Image,
	}
}

type CourseUp struct {
	Title       *string `json:"title"`
	Instructor  *string `json:"instructor"`
	Level       *string `json:"level"`
	Instrument  *string `json:"instrument"`
	Price       *int    `json:"price"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Apply returns c with every field set in up replaced. Rating and student
// count are not editable.
func (up CourseUp) Apply(c Course) Course {
	if up.Title != nil {
		c.Title = *up.Title
	}
	if up.Instructor != nil {
		c.Instructor = *up.Instructor
	}
	if up.Level != nil {
		c.Level = *up.Level
	}
	if up.Instrument != nil {
		c.Instrument = *up.Instrument
	}
	if up.Price != nil {
		c.Price = *up.Price
	}
	if up.Duration != nil {
		c.Duration = *up.Duration
	}
	if up.Description != nil {
		c.Description = *up.Description
	}
	if up.Image != nil {
		c.Image = *up.Image
	}
	return c
}
