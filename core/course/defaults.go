package course

// Defaults is the catalog served when no stored course list is available.
func Defaults() []Course {
	return []Course{
		{
			ID:          1,
			Title:       "Piano for Beginners",
			Instructor:  "Sarah Johnson",
			Level:       LevelBeginner,
			Instrument:  InstrumentPiano,
			Price:       1500000,
			Duration:    "12 weeks",
			Students:    234,
			Rating:      4.9,
			Description: "Reading notation, posture and your first songs with both hands.",
			Image:       "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=800&q=80",
		},
		{
			ID:          2,
			Title:       "Acoustic Guitar Fundamentals",
			Instructor:  "Michael Chen",
			Level:       LevelBeginner,
			Instrument:  InstrumentGuitar,
			Price:       1200000,
			Duration:    "10 weeks",
			Students:    312,
			Rating:      4.8,
			Description: "Open chords, strumming patterns and fingerpicking basics.",
			Image:       "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=800&q=80",
		},
		{
			ID:          3,
			Title:       "Classical Violin",
			Instructor:  "Elena Martinez",
			Level:       LevelAdvanced,
			Instrument:  InstrumentViolin,
			Price:       2500000,
			Duration:    "20 weeks",
			Students:    156,
			Rating:      4.9,
			Description: "Advanced bowing, shifting and repertoire from the classical period.",
			Image:       "https://images.unsplash.com/photo-1612225330812-01a9c6b355ec?w=800&q=80",
		},
		{
			ID:          4,
			Title:       "Drum Grooves and Fills",
			Instructor:  "David Brown",
			Level:       LevelIntermediate,
			Instrument:  InstrumentDrum,
			Price:       1800000,
			Duration:    "14 weeks",
			Students:    189,
			Rating:      4.7,
			Description: "Rock, funk and pop grooves with fills that connect them.",
			Image:       "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=800&q=80",
		},
		{
			ID:          5,
			Title:       "Jazz Saxophone",
			Instructor:  "James Wilson",
			Level:       LevelIntermediate,
			Instrument:  InstrumentSaxophone,
			Price:       2200000,
			Duration:    "16 weeks",
			Students:    98,
			Rating:      4.8,
			Description: "Swing feel, blues scales and improvising over standards.",
			Image:       "https://images.unsplash.com/photo-1573871669414-010dbf73ca84?w=800&q=80",
		},
	}
}
