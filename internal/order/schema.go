package order

import "priyansh-be/internal/schema"

var ItemSchema = schema.Model{
	Title: "OrderItem",
	Type:  "object",
	Properties: map[string]schema.Property{
		"product_id": schema.String("Product Id", "Product ID as string"),
		"title":      schema.String("Title", "Product title snapshot"),
		"quantity":   schema.Integer("Quantity", "Quantity ordered", schema.Min(1)),
		"price":      schema.Number("Price", "Unit price at time of order", schema.Min(0)),
	},
	Required: []string{"product_id", "title", "quantity", "price"},
}

var Schema = schema.Model{
	Title:       "Order",
	Type:        "object",
	Description: "Orders collection schema",
	Properties: map[string]schema.Property{
		"customer_name":    schema.String("Customer Name", ""),
		"customer_email":   schema.String("Customer Email", ""),
		"customer_phone":   schema.OptionalString("Customer Phone", ""),
		"shipping_address": schema.String("Shipping Address", ""),
		"items":            schema.ArrayOf("Items", "OrderItem"),
		"subtotal":         schema.Number("Subtotal", "", schema.Min(0)),
		"tax":              {Title: "Tax", Type: "number", Minimum: schema.Min(0), Default: 0.0},
		"total":            schema.Number("Total", "", schema.Min(0)),
	},
	Required: []string{"customer_name", "customer_email", "shipping_address", "items", "subtotal", "total"},
	Defs:     map[string]schema.Model{"OrderItem": ItemSchema},
}
