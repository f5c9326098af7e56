package product

func Defaults() []Product {
	price := func(n int) *int { return &n }

	return []Product{
		{
			ID:            1,
			Name:          "Yamaha FG800 Acoustic Guitar",
			Category:      "Guitar",
			Brand:         "Yamaha",
			Price:         3500000,
			OriginalPrice: price(4000000),
			Rating:        4.8,
			Reviews:       128,
			Stock:         15,
			Badge:         BadgeBestSeller,
			Image:         "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=800&q=80",
			Description:   "Solid spruce top with nato back and sides, a reliable first guitar.",
		},
		{
			ID:          2,
			Name:        "Roland TD-17KVX Electronic Drum Kit",
			Category:    "Drum",
			Brand:       "Roland",
			Price:       18500000,
			Rating:      4.9,
			Reviews:     64,
			Stock:       5,
			Badge:       BadgePremium,
			Image:       "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=800&q=80",
			Description: "Mesh heads, Bluetooth audio and the TD-17 sound module.",
		},
		{
			ID:          3,
			Name:        "Kawai ES120 Digital Piano",
			Category:    "Piano",
			Brand:       "Kawai",
			Price:       9800000,
			Rating:      4.7,
			Reviews:     41,
			Stock:       8,
			Image:       "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=800&q=80",
			Description: "88 weighted keys with Responsive Hammer Compact action.",
		},
		{
			ID:            4,
			Name:          "Stentor Student II Violin 4/4",
			Category:      "Violin",
			Brand:         "Stentor",
			Price:         2100000,
			OriginalPrice: price(2500000),
			Rating:        4.6,
			Reviews:       57,
			Stock:         12,
			Badge:         BadgePromo,
			Image:         "https://images.unsplash.com/photo-1612225330812-01a9c6b355ec?w=800&q=80",
			Description:   "Complete outfit with bow, rosin and a lightweight case.",
		},
		{
			ID:          5,
			Name:        "Fender Player Stratocaster",
			Category:    "Guitar",
			Brand:       "Fender",
			Price:       12500000,
			Rating:      4.9,
			Reviews:     93,
			Stock:       6,
			Image:       "https://images.unsplash.com/photo-1564186763535-ebb21ef5277f?w=800&q=80",
			Description: "Alder body, maple neck and three Player Series single coils.",
		},
		{
			ID:          6,
			Name:        "Yamaha YAS-280 Alto Saxophone",
			Category:    "Saxophone",
			Brand:       "Yamaha",
			Price:       15900000,
			Rating:      4.8,
			Reviews:     22,
			Stock:       4,
			Image:       "https://images.unsplash.com/photo-1573871669414-010dbf73ca84?w=800&q=80",
			Description: "Lightweight student alto with a clear, centered tone.",
		},
	}
}
