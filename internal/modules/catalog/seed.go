package catalog

// DefaultCategories seeds the category list on first access. "All" is the
// pseudo-category that matches every product.
func DefaultCategories() []string {
	return []string{"All", "Serum", "Hair Care", "Facewash", "Shampoo", "Body Care"}
}

// DefaultProducts seeds the catalog on first access.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Glow Essence Serum",
			Category:    "Serum",
			Price:       64,
			Description: "A vitamin-rich concentrate that restores natural luminescence and deeply hydrates with alpine rose stem cells.",
			Ingredients: []string{"Vitamin C", "Hyaluronic Acid", "Rose Extract", "Squalane"},
			Image:       "https://images.unsplash.com/photo-1612817288484-6f916006741a?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9,
			Reviews:     1240,
		},
		{
			ID:          "2",
			Name:        "Silk Mane Hair Oil",
			Category:    "Hair Care",
			Price:       48,
			Description: "A transformative blend of cold-pressed oils that seals cuticles and adds a mirror-like shine to every strand.",
			Ingredients: []string{"Argan Oil", "Camellia Seed", "Vitamin E", "Sandalwood"},
			Image:       "https://images.unsplash.com/photo-1526947425960-945c6e72858f?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Reviews:     892,
		},
		{
			ID:          "3",
			Name:        "Cloud Cleansing Foam",
			Category:    "Facewash",
			Price:       32,
			Description: "A marshmallow-soft foam that lifts impurities without disrupting the delicate moisture barrier.",
			Ingredients: []string{"Aloe Vera", "Green Tea", "Glycerin", "Amino Acids"},
			Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&q=80&w=800",
			Rating:      4.7,
			Reviews:     2105,
		},
		{
			ID:          "4",
			Name:        "Botanical Repair Shampoo",
			Category:    "Shampoo",
			Price:       38,
			Description: "Gently cleanses while infusing hair with plant proteins to strengthen from root to tip.",
			Ingredients: []string{"Pea Protein", "Bamboo Extract", "Panthenol", "Lavender"},
			Image:       "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9,
			Reviews:     3421,
		},
		{
			ID:          "5",
			Name:        "Midnight Dew Serum",
			Category:    "Serum",
			Price:       72,
			Description: "Intense overnight repair serum that works with your circadian rhythm to smooth fine lines and restore texture.",
			Ingredients: []string{"Retinol", "Peptides", "Niacidamide", "Ceramides"},
			Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?auto=format&fit=crop&q=80&w=800",
			Rating:      5.0,
			Reviews:     678,
		},
		{
			ID:          "6",
			Name:        "Rose Gold Shimmer Oil",
			Category:    "Body Care",
			Price:       55,
			Description: "Dry body oil infused with gold mica to provide a sun-kissed glow and deep nourishment.",
			Ingredients: []string{"Coconut Oil", "Mica", "Gold Flakes", "Rosehip Oil"},
			Image:       "https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Reviews:     1560,
		},
	}
}
