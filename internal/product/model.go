package product

import (
	"priyansh-be/internal/validation"

	"go.mongodb.org/mongo-driver/bson"
)

const Collection = "product"

// Known categories. Category is free text; these are the values the
// storefront uses.
const (
	CategoryDryFruits = "dryfruits"
	CategorySpices    = "spices"
	CategoryCombos    = "combos"
	CategoryGifting   = "gifting"
)

var knownCategories = []string{CategoryDryFruits, CategorySpices, CategoryCombos, CategoryGifting}

func IsKnownCategory(c string) bool {
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Product is a validated catalog entry. Presence of required fields is
// checked on the raw document in Parse; "" is a legal title or category.
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category"`
	ImageURL    *string `json:"image_url" bson:"image_url"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
}

func (p Product) Validate() error {
	return validation.Struct("product", p)
}

// document is the stored shape. Pointers tell a missing field apart from
// a zero value, so only absent keys fail "required".
type document struct {
	Title       *string  `json:"title" bson:"title" validate:"required"`
	Description *string  `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" bson:"category" validate:"required"`
	ImageURL    *string  `json:"image_url" bson:"image_url"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
}

// Parse builds a Product from a raw stored document. Storage-only fields
// (_id, timestamps) are dropped and in_stock defaults to true.
func Parse(raw bson.M) (Product, error) {
	b, err := bson.Marshal(raw)
	if err != nil {
		return Product{}, err
	}

	var d document
	if err := bson.Unmarshal(b, &d); err != nil {
		return Product{}, &validation.ValidationError{
			Entity: "product",
			Fields: []validation.FieldError{{
				Field:      "document",
				Constraint: "type",
				Message:    err.Error(),
			}},
		}
	}

	if err := validation.Struct("product", d); err != nil {
		return Product{}, err
	}

	p := Product{
		Title:       *d.Title,
		Description: d.Description,
		Price:       *d.Price,
		Category:    *d.Category,
		ImageURL:    d.ImageURL,
		InStock:     true,
	}
	if d.InStock != nil {
		p.InStock = *d.InStock
	}
	return p, nil
}

type SeedResult struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Inserted int    `json:"inserted"`
}
