package user

import (
	"priyansh-be/internal/validation"

	"go.mongodb.org/mongo-driver/bson"
)

const Collection = "user"

// User is a customer record. No route reads or writes it; it is
// declared for the schema listing consumed by data-viewer tools.
type User struct {
	Name     string  `json:"name" bson:"name"`
	Email    string  `json:"email" bson:"email"`
	Address  string  `json:"address" bson:"address"`
	Phone    *string `json:"phone" bson:"phone"`
	IsActive bool    `json:"is_active" bson:"is_active"`
}

// New returns a User with the defaults applied (active).
func New(name, email, address string, phone *string) User {
	return User{Name: name, Email: email, Address: address, Phone: phone, IsActive: true}
}

type document struct {
	Name     *string `json:"name" bson:"name" validate:"required"`
	Email    *string `json:"email" bson:"email" validate:"required"`
	Address  *string `json:"address" bson:"address" validate:"required"`
	Phone    *string `json:"phone" bson:"phone"`
	IsActive *bool   `json:"is_active" bson:"is_active"`
}

// Parse builds a User from a raw document. Absent required keys fail;
// empty strings are kept. is_active defaults to true.
func Parse(raw bson.M) (User, error) {
	b, err := bson.Marshal(raw)
	if err != nil {
		return User{}, err
	}

	var d document
	if err := bson.Unmarshal(b, &d); err != nil {
		return User{}, &validation.ValidationError{
			Entity: "user",
			Fields: []validation.FieldError{{
				Field:      "document",
				Constraint: "type",
				Message:    err.Error(),
			}},
		}
	}

	if err := validation.Struct("user", d); err != nil {
		return User{}, err
	}

	u := New(*d.Name, *d.Email, *d.Address, d.Phone)
	if d.IsActive != nil {
		u.IsActive = *d.IsActive
	}
	return u, nil
}
