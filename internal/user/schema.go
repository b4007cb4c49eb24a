package user

import "priyansh-be/internal/schema"

var Schema = schema.Model{
	Title:       "User",
	Type:        "object",
	Description: "Users collection schema",
	Properties: map[string]schema.Property{
		"name":      schema.String("Name", "Full name"),
		"email":     schema.String("Email", "Email address"),
		"address":   schema.String("Address", "Address"),
		"phone":     schema.OptionalString("Phone", "Phone number"),
		"is_active": schema.Boolean("Is Active", "Whether user is active", true),
	},
	Required: []string{"name", "email", "address"},
}
