package services

import "psc-server/models"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// fallbackCatalog is the bundled product list served when the database is
// unreachable or returns no rows. It mirrors the seed data shipped with
// the storefront.
var fallbackCatalog = []models.Product{
	{
		ID:          "chelsea-home-2425",
		Title:       "Chelsea 24/25 Home Jersey",
		Description: "Official Chelsea FC 24/25 home shirt with breathable Dri-FIT ADV mesh for match-day performance.",
		Price:       899, DiscountPrice: floatPtr(749),
		Category: models.CategoryJersey, League: "Premier League", Team: "Chelsea",
		Sizes:   []string{"S", "M", "L", "XL", "XXL"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1522778119026-d647f0596c20?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1523380913932-6c6c89f9a3e5?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.8, ReviewCount: 182,
		Features:    []string{"Lightweight recycled polyester", "Laser cut ventilation zones", "Official player name printing available"},
		Stock:       intPtr(6),
		ReleaseDate: "2024-08-12", BestsellerScore: 95,
	},
	{
		ID:          "ghana-afcon-pro",
		Title:       "Ghana Black Stars Pro Jersey",
		Description: "Limited AFCON edition jersey for the Black Stars with woven crest and embossed map detailing.",
		Price:       720, DiscountPrice: floatPtr(640),
		Category: models.CategoryJersey, League: "AFCON", Team: "Ghana",
		Sizes:   []string{"S", "M", "L", "XL", "XXL"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1604671801908-81cbe5398bb0?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1509027936075-1f7ccc660f3a?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.9, ReviewCount: 264,
		Features:    []string{"Heat-sealed federation crest", "Moisture-wicking mesh back", "Includes commemorative AFCON patch"},
		Stock:       intPtr(3),
		ReleaseDate: "2024-12-01", BestsellerScore: 97,
	},
	{
		ID:          "bayern-away-2425",
		Title:       "Bayern Munich 24/25 Away Jersey",
		Description: "Sleek Bayern Munich away kit with tonal diamond graphic and AEROREADY cooling.",
		Price:       780, DiscountPrice: floatPtr(699),
		Category: models.CategoryJersey, League: "Bundesliga", Team: "Bayern Munich",
		Sizes:   []string{"S", "M", "L", "XL", "XXL"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.7, ReviewCount: 148,
		Features:    []string{"Ribbed retro-inspired collar", "QR-enabled authenticity label", "Bayern crest in silicone detail"},
		Stock:       intPtr(9),
		ReleaseDate: "2024-07-21", BestsellerScore: 89,
	},
	{
		ID:          "real-madrid-championship",
		Title:       "Real Madrid Champions Jersey",
		Description: "Celebrate Madrid's continental triumph with the champions jersey featuring gold trim.",
		Price:       840, DiscountPrice: floatPtr(780),
		Category: models.CategoryJersey, League: "La Liga", Team: "Real Madrid",
		Sizes:   []string{"S", "M", "L", "XL"},
		InStock: false,
		Images: []string{
			"https://images.unsplash.com/photo-1521412644187-c49fa049e84d?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.6, ReviewCount: 117,
		Features:    []string{"Gold champions trim", "Embroidered trophy count", "Premium jacquard knit"},
		ReleaseDate: "2024-06-10", BestsellerScore: 85,
	},
	{
		ID:          "predator-velocity-elite",
		Title:       "Predator Velocity Elite FG",
		Description: "Carbon-infused soleplate with tactile strike zones for precision ball control on firm ground.",
		Price:       1190, DiscountPrice: floatPtr(999),
		Category: models.CategoryBoots, League: "Premier League", Team: "Chelsea",
		Sizes:   []string{"EU40", "EU41", "EU42", "EU43", "EU44"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1508609349937-5ec4ae374ebf?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.9, ReviewCount: 221,
		Features:    []string{"Forged carbon power spine", "Adaptive knit collar", "Firm ground stud layout"},
		Stock:       intPtr(5),
		ReleaseDate: "2024-08-08", BestsellerScore: 98,
	},
	{
		ID:          "phantom-strike-elite",
		Title:       "Nike Phantom Strike Elite",
		Description: "Hyperquick sole system with gripknit upper for explosive agility.",
		Price:       1120, DiscountPrice: floatPtr(1020),
		Category: models.CategoryBoots, League: "Premier League", Team: "Manchester City",
		Sizes:   []string{"EU39", "EU40", "EU41", "EU42", "EU43"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.7, ReviewCount: 178,
		Features:    []string{"Gripknit textured upper", "Responsive agility plate", "Dynamic fit collar"},
		Stock:       intPtr(14),
		ReleaseDate: "2024-07-15", BestsellerScore: 92,
	},
	{
		ID:          "puma-ultra-pro",
		Title:       "Puma Ultra Pro Speed",
		Description: "Featherlight composite boot engineered for raw pace with PWRTAPE support.",
		Price:       980, DiscountPrice: floatPtr(880),
		Category: models.CategoryBoots, League: "Bundesliga", Team: "Borussia Dortmund",
		Sizes:   []string{"EU40", "EU41", "EU42", "EU43"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1521412644187-c49fa049e84d?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.6, ReviewCount: 132,
		Features:    []string{"PWRTAPE zonal support", "Ultraweave upper", "FG/AG hybrid studs"},
		Stock:       intPtr(10),
		ReleaseDate: "2024-09-25", BestsellerScore: 86,
	},
	{
		ID:          "furon-ghana-special",
		Title:       "New Balance Furon Ghana Special",
		Description: "Limited Ghana edition Furon with Kente-inspired knit collar and Hypoknit upper.",
		Price:       1050, DiscountPrice: floatPtr(920),
		Category: models.CategoryBoots, League: "AFCON", Team: "Ghana",
		Sizes:   []string{"EU40", "EU41", "EU42", "EU43", "EU44"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1508609349937-5ec4ae374ebf?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.8, ReviewCount: 156,
		Features:    []string{"Hypoknit precision upper", "Infused Kente collar", "Lightweight nylon chassis"},
		Stock:       intPtr(7),
		ReleaseDate: "2024-10-18", BestsellerScore: 90,
	},
	{
		ID:          "precision-match-ball-viento",
		Title:       "Precision Match Ball Viento",
		Description: "FIFA Quality Pro certified match ball with thermal bonded panels for consistent flight.",
		Price:       420, DiscountPrice: floatPtr(360),
		Category: models.CategoryEquipment, League: "Premier League", Team: "Neutral",
		Sizes:   []string{"Size 5"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1517927033932-b3d18e61fb3a?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1523380915935-0accd6a254bc?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.8, ReviewCount: 137,
		Features:    []string{"Thermal bonded construction", "Micro-textured shell", "FIFA Quality Pro certified"},
		Stock:       intPtr(19),
		ReleaseDate: "2024-08-14", BestsellerScore: 90,
	},
	{
		ID:          "elite-guard-pro-shin",
		Title:       "Elite Guard Pro Shin Guards",
		Description: "Carbon shell shin guards with multi-density foam and compression sleeve.",
		Price:       260, DiscountPrice: floatPtr(220),
		Category: models.CategoryEquipment, League: "La Liga", Team: "Real Madrid",
		Sizes:   []string{"S", "M", "L"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1523380913932-6c6c89f9a3e5?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.6, ReviewCount: 84,
		Features:    []string{"Featherweight carbon shell", "Compression retention sleeve", "Three layer impact protection"},
		Stock:       intPtr(15),
		ReleaseDate: "2024-05-09", BestsellerScore: 75,
	},
	{
		ID:          "hydrocharge-recovery-bottle",
		Title:       "HydroCharge Recovery Bottle",
		Description: "Insulated bottle with electrolyte mixing chamber and quick-lock lid.",
		Price:       180, DiscountPrice: floatPtr(150),
		Category: models.CategoryEquipment, League: "Bundesliga", Team: "Neutral",
		Sizes:   []string{"One Size"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1581578707711-dfed5d9f4deb?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.5, ReviewCount: 63,
		Features:    []string{"Double wall insulation", "Integrated mixing chamber", "Leak proof twist cap"},
		Stock:       intPtr(24),
		ReleaseDate: "2024-04-18", BestsellerScore: 70,
	},
	{
		ID:          "smart-gps-performance-vest",
		Title:       "Smart GPS Performance Vest",
		Description: "Integrated GPS tracking vest with live telemetry and analytics dashboard access.",
		Price:       1650, DiscountPrice: floatPtr(1480),
		Category: models.CategoryEquipment, League: "La Liga", Team: "Barcelona",
		Sizes:   []string{"S", "M", "L"},
		InStock: true,
		Images: []string{
			"https://images.unsplash.com/photo-1495712686514-3b7120f83e4c?auto=format&fit=crop&w=700&q=80",
			"https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=700&q=80",
		},
		Rating: 4.6, ReviewCount: 66,
		Features:    []string{"Live GPS telemetry", "Cloud analytics dashboard", "Machine washable sensor pod"},
		Stock:       intPtr(4),
		ReleaseDate: "2024-09-29", BestsellerScore: 88,
	},
}
