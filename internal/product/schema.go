package product

import "priyansh-be/internal/schema"

var Schema = schema.Model{
	Title:       "Product",
	Type:        "object",
	Description: "Products collection schema",
	Properties: map[string]schema.Property{
		"title":       schema.String("Title", "Product title"),
		"description": schema.OptionalString("Description", "Product description"),
		"price":       schema.Number("Price", "Price in currency units", schema.Min(0)),
		"category": {
			Title:       "Category",
			Type:        "string",
			Description: "Category: dryfruits | spices | combos | gifting",
			Examples:    knownCategories,
		},
		"image_url": schema.OptionalString("Image Url", "Image URL"),
		"in_stock":  schema.Boolean("In Stock", "Whether product is in stock", true),
	},
	Required: []string{"title", "price", "category"},
}
