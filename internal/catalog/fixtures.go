package catalog

// Seed catalog served by the mock backend.
var seedProducts = []Product{
	{
		ID:                 1,
		Name:               "Premium Wireless Headphones",
		PriceCents:         29999,
		OriginalPriceCents: 39999,
		Category:           "Electronics",
		ImageURL:           "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
			"https://images.unsplash.com/photo-1487215078519-e21cc028cb29?w=800&q=80",
		},
		InStock:     true,
		Description: "Experience premium sound quality with our latest wireless headphones. Featuring active noise cancellation, 30-hour battery life, and premium comfort.",
		Features:    []string{"Active Noise Cancellation", "30-hour battery life", "Premium leather ear cups", "Bluetooth 5.0", "Foldable design"},
		Colors:      []string{"Black", "Silver", "Rose Gold"},
		Rating:      4.8,
		ReviewCount: 234,
		Trending:    true,
		BestSeller:  true,
	},
	{
		ID:                 2,
		Name:               "Smart Fitness Watch",
		PriceCents:         19999,
		OriginalPriceCents: 24999,
		Category:           "Wearables",
		ImageURL:           "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
			"https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?w=800&q=80",
		},
		InStock:     true,
		Description: "Track your fitness goals with precision. Heart rate monitoring, GPS tracking, and sleep analysis in a sleek design.",
		Features:    []string{"Heart rate monitoring", "GPS tracking", "Sleep analysis", "Water resistant up to 50m", "7-day battery life"},
		Colors:      []string{"Black", "Blue", "Pink"},
		Sizes:       []string{"Small", "Medium", "Large"},
		Rating:      4.6,
		ReviewCount: 189,
		Trending:    true,
	},
	{
		ID:                 3,
		Name:               "Minimalist Leather Wallet",
		PriceCents:         4999,
		OriginalPriceCents: 7999,
		Category:           "Accessories",
		ImageURL:           "https://images.unsplash.com/photo-1627123424574-724758594e93?w=800&q=80",
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1627123424574-724758594e93?w=800&q=80",
			"https://images.unsplash.com/photo-1591561954555-607968c989ab?w=800&q=80",
		},
		InStock:     true,
		Description: "Crafted from premium Italian leather, this minimalist wallet holds 6-8 cards and cash while maintaining a slim profile.",
		Features:    []string{"Genuine Italian leather", "RFID protection", "Holds 6-8 cards", "Slim profile design", "Handcrafted quality"},
		Colors:      []string{"Brown", "Black", "Tan"},
		Rating:      4.9,
		ReviewCount: 567,
		BestSeller:  true,
	},
	{
		ID:                 4,
		Name:               "Modern Desk Lamp",
		PriceCents:         8999,
		OriginalPriceCents: 12999,
		Category:           "Home & Office",
		ImageURL:           "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
		ImageURLs:          []string{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80"},
		InStock:            true,
		Description:        "Illuminate your workspace with adjustable brightness and color temperature. USB charging port included.",
		Features:           []string{"Adjustable brightness", "Color temperature control", "USB charging port", "Touch controls", "Energy efficient LED"},
		Colors:             []string{"White", "Black"},
		Rating:             4.7,
		ReviewCount:        123,
		Trending:           true,
	},
	{
		ID:                 5,
		Name:               "Insulated Water Bottle",
		PriceCents:         3499,
		OriginalPriceCents: 4499,
		Category:           "Sports & Outdoors",
		ImageURL:           "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800&q=80",
		ImageURLs:          []string{"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800&q=80"},
		InStock:            true,
		Description:        "Keep drinks cold for 24 hours or hot for 12 hours with double-wall vacuum insulation.",
		Features:           []string{"Double-wall vacuum insulation", "24 hours cold / 12 hours hot", "BPA-free materials", "Wide mouth opening", "Leak-proof lid"},
		Colors:             []string{"Blue", "Green", "Pink", "Black"},
		Sizes:              []string{"18oz", "32oz", "40oz"},
		Rating:             4.8,
		ReviewCount:        891,
		BestSeller:         true,
	},
	{
		ID:                 6,
		Name:               "Wireless Charging Pad",
		PriceCents:         3999,
		OriginalPriceCents: 5999,
		Category:           "Electronics",
		ImageURL:           "https://images.unsplash.com/photo-1591290619762-c588dc305b5c?w=800&q=80",
		ImageURLs:          []string{"https://images.unsplash.com/photo-1591290619762-c588dc305b5c?w=800&q=80"},
		InStock:            true,
		Description:        "Fast wireless charging for all Qi-enabled devices. Sleek design with LED indicator.",
		Features:           []string{"10W fast charging", "Qi-certified", "LED indicator", "Non-slip surface", "Overcharge protection"},
		Colors:             []string{"Black", "White"},
		Rating:             4.5,
		ReviewCount:        234,
		Trending:           true,
	},
	{
		ID:                 7,
		Name:               "Canvas Backpack",
		PriceCents:         7999,
		OriginalPriceCents: 11999,
		Category:           "Bags",
		ImageURL:           "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			"https://images.unsplash.com/photo-1577733966973-d680bffd2e80?w=800&q=80",
		},
		InStock:     true,
		Description: "Durable canvas backpack with leather accents. Perfect for daily commute or weekend adventures.",
		Features:    []string{"Water-resistant canvas", "Genuine leather trim", "Padded laptop compartment", "Multiple pockets", "Adjustable straps"},
		Colors:      []string{"Navy", "Gray", "Olive"},
		Rating:      4.7,
		ReviewCount: 456,
		BestSeller:  true,
	},
	{
		ID:                 8,
		Name:               "Aromatherapy Diffuser",
		PriceCents:         4499,
		OriginalPriceCents: 6999,
		Category:           "Home & Living",
		ImageURL:           "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800&q=80",
		ImageURLs:          []string{"https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800&q=80"},
		InStock:            true,
		Description:        "Create a relaxing atmosphere with this ultrasonic aromatherapy diffuser. Features color-changing LED lights.",
		Features:           []string{"Ultrasonic technology", "Color-changing LED", "Auto shut-off", "Whisper-quiet operation", "300ml capacity"},
		Colors:             []string{"White", "Wood Grain"},
		Rating:             4.6,
		ReviewCount:        789,
		Trending:           true,
	},
}

var seedReviews = []Review{
	{
		ID:        1,
		ProductID: 1,
		Author:    "Sarah M.",
		Rating:    5,
		Date:      "2025-10-15",
		Title:     "Amazing sound quality!",
		Content:   "These headphones exceeded my expectations. The noise cancellation is fantastic and the battery life is incredible.",
	},
	{
		ID:        2,
		ProductID: 1,
		Author:    "John D.",
		Rating:    4,
		Date:      "2025-10-10",
		Title:     "Great but pricey",
		Content:   "Sound quality is excellent, but they are a bit expensive. Still worth it for the features you get.",
	},
	{
		ID:        3,
		ProductID: 1,
		Author:    "Emily R.",
		Rating:    5,
		Date:      "2025-10-05",
		Title:     "Perfect for work from home",
		Content:   "I use these daily for video calls and music. The comfort level is outstanding even after hours of use.",
	},
}
