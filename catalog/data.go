package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCategories() []models.Category {
	return []models.Category{
		{
			ID:          "cat-1",
			Name:        "Buttons",
			Description: "High-quality buttons in various materials, sizes, and designs",
			Image:       "https://images.pexels.com/photos/6447067/pexels-photo-6447067.jpeg",
			Slug:        "buttons",
		},
		{
			ID:          "cat-2",
			Name:        "Zippers",
			Description: "Durable zippers for all types of garments and accessories",
			Image:       "https://images.pexels.com/photos/7580865/pexels-photo-7580865.jpeg",
			Slug:        "zippers",
		},
		{
			ID:          "cat-3",
			Name:        "Hooks & Clasps",
			Description: "Reliable hooks and clasps for secure closures",
			Image:       "https://images.pexels.com/photos/10282805/pexels-photo-10282805.jpeg",
			Slug:        "hooks",
		},
		{
			ID:          "cat-4",
			Name:        "Lace & Trims",
			Description: "Elegant lace and trims to add a touch of sophistication",
			Image:       "https://images.pexels.com/photos/5695880/pexels-photo-5695880.jpeg",
			Slug:        "lace",
		},
		{
			ID:          "cat-5",
			Name:        "Fabric Patches",
			Description: "Creative fabric patches to personalize your garments",
			Image:       "https://images.pexels.com/photos/6971903/pexels-photo-6971903.jpeg",
			Slug:        "patches",
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod-1",
			Name:        "Classic Metal Button Set",
			Description: "Set of 10 premium metal buttons with an antique brass finish. Perfect for jackets, coats, and formal wear. Each button features a unique embossed design that adds sophistication to any garment.",
			Price:       price("12.99"),
			Images: []string{
				"https://images.pexels.com/photos/5695831/pexels-photo-5695831.jpeg",
				"https://images.pexels.com/photos/6447067/pexels-photo-6447067.jpeg",
			},
			Category:     "cat-1",
			CategoryName: "Buttons",
			Colors: []models.ProductColor{
				{Name: "Brass", Value: "#b5a642"},
				{Name: "Silver", Value: "#c0c0c0"},
				{Name: "Bronze", Value: "#cd7f32"},
			},
			Sizes:      []string{"15mm", "20mm", "25mm"},
			Materials:  []string{"Metal", "Brass"},
			Featured:   true,
			Bestseller: true,
			InStock:    true,
			Rating:     4.8,
			Reviews:    124,
		},
		{
			ID:          "prod-2",
			Name:        "Wooden Button Collection",
			Description: "Set of 12 natural wooden buttons in various shapes and sizes. Eco-friendly and perfect for adding a rustic touch to your handmade projects.",
			Price:       price("9.99"),
			Images: []string{
				"https://images.pexels.com/photos/6046989/pexels-photo-6046989.jpeg",
				"https://images.pexels.com/photos/6046226/pexels-photo-6046226.jpeg",
			},
			Category:     "cat-1",
			CategoryName: "Buttons",
			Colors: []models.ProductColor{
				{Name: "Natural", Value: "#deb887"},
				{Name: "Walnut", Value: "#5c4033"},
				{Name: "Ebony", Value: "#3d2b1f"},
			},
			Sizes:      []string{"12mm", "18mm", "22mm"},
			Materials:  []string{"Wood", "Natural"},
			Featured:   true,
			Bestseller: false,
			InStock:    true,
			Rating:     4.5,
			Reviews:    86,
		},
		{
			ID:          "prod-3",
			Name:        "Metal Zipper - Heavy Duty",
			Description: "Durable metal zipper designed for heavy-duty applications. Ideal for jackets, bags, and outdoor gear where strength and reliability are essential.",
			Price:       price("7.99"),
			Images: []string{
				"https://images.pexels.com/photos/7580865/pexels-photo-7580865.jpeg",
				"https://images.pexels.com/photos/14016564/pexels-photo-14016564.jpeg",
			},
			Category:     "cat-2",
			CategoryName: "Zippers",
			Colors: []models.ProductColor{
				{Name: "Black", Value: "#000000"},
				{Name: "Silver", Value: "#c0c0c0"},
				{Name: "Gunmetal", Value: "#2c3539"},
			},
			Sizes:      []string{"15cm", "20cm", "30cm", "45cm"},
			Materials:  []string{"Metal", "Nylon"},
			Featured:   false,
			Bestseller: true,
			InStock:    true,
			Rating:     4.9,
			Reviews:    203,
		},
		{
			ID:          "prod-4",
			Name:        "Invisible Zipper Set",
			Description: "Set of 5 invisible zippers perfect for dresses, skirts, and other fine garments where you want the closure to be hidden.",
			Price:       price("11.99"),
			Images: []string{
				"https://images.pexels.com/photos/6185642/pexels-photo-6185642.jpeg",
				"https://images.pexels.com/photos/8801195/pexels-photo-8801195.jpeg",
			},
			Category:     "cat-2",
			CategoryName: "Zippers",
			Colors: []models.ProductColor{
				{Name: "White", Value: "#ffffff"},
				{Name: "Black", Value: "#000000"},
				{Name: "Beige", Value: "#f5f5dc"},
			},
			Sizes:      []string{"20cm", "30cm", "40cm"},
			Materials:  []string{"Nylon", "Polyester"},
			Featured:   true,
			Bestseller: false,
			InStock:    true,
			Rating:     4.6,
			Reviews:    97,
		},
		{
			ID:          "prod-5",
			Name:        "Metal Hook and Eye Clasps",
			Description: "Set of 20 pairs of hook and eye clasps, perfect for lingerie, blouses, and other garments requiring secure but discrete closures.",
			Price:       price("5.99"),
			Images: []string{
				"https://images.pexels.com/photos/10282805/pexels-photo-10282805.jpeg",
			},
			Category:     "cat-3",
			CategoryName: "Hooks & Clasps",
			Colors: []models.ProductColor{
				{Name: "Silver", Value: "#c0c0c0"},
				{Name: "Black", Value: "#000000"},
			},
			Sizes:      []string{"8mm", "10mm"},
			Materials:  []string{"Metal"},
			Featured:   false,
			Bestseller: true,
			InStock:    true,
			Rating:     4.4,
			Reviews:    62,
		},
		{
			ID:          "prod-6",
			Name:        "Decorative Lace Trim",
			Description: "Beautiful floral lace trim, perfect for adding elegance to garments, home decor, and craft projects. Sold by the yard.",
			Price:       price("8.49"),
			Images: []string{
				"https://images.pexels.com/photos/5695880/pexels-photo-5695880.jpeg",
				"https://images.pexels.com/photos/6045028/pexels-photo-6045028.jpeg",
			},
			Category:     "cat-4",
			CategoryName: "Lace & Trims",
			Colors: []models.ProductColor{
				{Name: "White", Value: "#ffffff"},
				{Name: "Ivory", Value: "#fffff0"},
				{Name: "Black", Value: "#000000"},
			},
			Sizes:      []string{"1.5cm", "2.5cm", "4cm"},
			Materials:  []string{"Cotton", "Polyester"},
			Featured:   true,
			Bestseller: true,
			InStock:    true,
			Rating:     4.8,
			Reviews:    156,
		},
		{
			ID:          "prod-7",
			Name:        "Embroidered Floral Patches",
			Description: "Set of 3 iron-on embroidered floral patches. Perfect for personalizing denim, jackets, bags, and more.",
			Price:       price("14.99"),
			Images: []string{
				"https://images.pexels.com/photos/6971903/pexels-photo-6971903.jpeg",
				"https://images.pexels.com/photos/6046194/pexels-photo-6046194.jpeg",
			},
			Category:     "cat-5",
			CategoryName: "Fabric Patches",
			Colors: []models.ProductColor{
				{Name: "Multi", Value: "#ffffff"},
			},
			Sizes:      []string{"Small", "Medium", "Large"},
			Materials:  []string{"Cotton", "Polyester"},
			Featured:   true,
			Bestseller: false,
			InStock:    true,
			Rating:     4.7,
			Reviews:    89,
		},
		{
			ID:          "prod-8",
			Name:        "Pearl Button Collection",
			Description: "Set of 15 elegant pearl-effect buttons in various sizes. Perfect for wedding dresses, formal wear, and delicate garments.",
			Price:       price("15.99"),
			Images: []string{
				"https://images.pexels.com/photos/3735149/pexels-photo-3735149.jpeg",
				"https://images.pexels.com/photos/10013067/pexels-photo-10013067.jpeg",
			},
			Category:     "cat-1",
			CategoryName: "Buttons",
			Colors: []models.ProductColor{
				{Name: "White", Value: "#ffffff"},
				{Name: "Cream", Value: "#fffdd0"},
				{Name: "Blush", Value: "#ffcccb"},
			},
			Sizes:      []string{"10mm", "15mm", "20mm"},
			Materials:  []string{"Plastic", "Pearl Effect"},
			Featured:   false,
			Bestseller: true,
			InStock:    true,
			Rating:     4.9,
			Reviews:    112,
		},
		{
			ID:          "prod-9",
			Name:        "Vintage Button Assortment",
			Description: "Mixed collection of 25 vintage-style buttons in various materials, colors, and designs. Perfect for adding character to your creations.",
			Price:       price("19.99"),
			Images: []string{
				"https://images.pexels.com/photos/6447067/pexels-photo-6447067.jpeg",
				"https://images.pexels.com/photos/5695831/pexels-photo-5695831.jpeg",
			},
			Category:     "cat-1",
			CategoryName: "Buttons",
			Colors: []models.ProductColor{
				{Name: "Assorted", Value: "#ffffff"},
			},
			Sizes:      []string{"Assorted"},
			Materials:  []string{"Metal", "Wood", "Plastic"},
			Featured:   true,
			Bestseller: true,
			InStock:    true,
			Rating:     4.7,
			Reviews:    175,
		},
		{
			ID:          "prod-10",
			Name:        "Satin Ribbon Trim",
			Description: "Luxurious satin ribbon trim, perfect for adding elegant finishing touches to garments, accessories, and home decor projects. Sold by the yard.",
			Price:       price("6.99"),
			Images: []string{
				"https://images.pexels.com/photos/5706427/pexels-photo-5706427.jpeg",
				"https://images.pexels.com/photos/5705490/pexels-photo-5705490.jpeg",
			},
			Category:     "cat-4",
			CategoryName: "Lace & Trims",
			Colors: []models.ProductColor{
				{Name: "Ivory", Value: "#fffff0"},
				{Name: "Black", Value: "#000000"},
				{Name: "Navy", Value: "#000080"},
				{Name: "Burgundy", Value: "#800020"},
			},
			Sizes:      []string{"1cm", "2cm", "3cm"},
			Materials:  []string{"Polyester", "Satin"},
			Featured:   false,
			Bestseller: false,
			InStock:    true,
			Rating:     4.5,
			Reviews:    83,
		},
		{
			ID:          "prod-11",
			Name:        "Denim Patch Set",
			Description: "Set of 5 iron-on denim patches in various shapes and sizes. Ideal for repairing or customizing jeans and other denim items.",
			Price:       price("12.49"),
			Images: []string{
				"https://images.pexels.com/photos/6046378/pexels-photo-6046378.jpeg",
				"https://images.pexels.com/photos/5706501/pexels-photo-5706501.jpeg",
			},
			Category:     "cat-5",
			CategoryName: "Fabric Patches",
			Colors: []models.ProductColor{
				{Name: "Denim Blue", Value: "#6f8faf"},
				{Name: "Dark Denim", Value: "#4a6b8a"},
			},
			Sizes:      []string{"Small", "Medium", "Large"},
			Materials:  []string{"Denim", "Cotton"},
			Featured:   false,
			Bestseller: true,
			InStock:    true,
			Rating:     4.6,
			Reviews:    97,
		},
		{
			ID:          "prod-12",
			Name:        "Plastic Snap Buttons",
			Description: "Set of 50 durable plastic snap buttons in various colors. Perfect for children's clothing, crafts, and quick fastenings.",
			Price:       price("8.99"),
			Images: []string{
				"https://images.pexels.com/photos/5705454/pexels-photo-5705454.jpeg",
				"https://images.pexels.com/photos/6046226/pexels-photo-6046226.jpeg",
			},
			Category:     "cat-1",
			CategoryName: "Buttons",
			Colors: []models.ProductColor{
				{Name: "White", Value: "#ffffff"},
				{Name: "Black", Value: "#000000"},
				{Name: "Red", Value: "#ff0000"},
				{Name: "Blue", Value: "#0000ff"},
			},
			Sizes:      []string{"10mm", "12mm"},
			Materials:  []string{"Plastic"},
			Featured:   false,
			Bestseller: false,
			InStock:    true,
			Rating:     4.3,
			Reviews:    68,
		},
	}
}
