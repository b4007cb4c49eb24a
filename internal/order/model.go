package order

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"priyansh-be/internal/validation"
)

const Collection = "order"

// OrderItem is a line snapshot: Title and Price are copied at checkout so
// the order stays accurate if the product later changes or disappears.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
}

type Order struct {
	ID              string      `json:"id,omitempty" bson:"-"`
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string      `json:"customer_email" bson:"customer_email"`
	CustomerPhone   *string     `json:"customer_phone" bson:"customer_phone"`
	ShippingAddress string      `json:"shipping_address" bson:"shipping_address"`
	Items           []OrderItem `json:"items" bson:"items" validate:"dive"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Tax             float64     `json:"tax" bson:"tax" validate:"gte=0"`
	Total           float64     `json:"total" bson:"total" validate:"gte=0"`
	CreatedAt       *time.Time  `json:"created_at,omitempty" bson:"-"`
}

func (o Order) Validate() error {
	return validation.Struct("order", o)
}

// CheckoutInput is the POST /checkout body. Required fields are pointers so
// an absent key is reported as missing while "" or 0 is accepted.
type CheckoutInput struct {
	CustomerName    *string     `json:"customer_name" validate:"required"`
	CustomerEmail   *string     `json:"customer_email" validate:"required"`
	CustomerPhone   *string     `json:"customer_phone"`
	ShippingAddress *string     `json:"shipping_address" validate:"required"`
	Items           []ItemInput `json:"items" validate:"required,dive"`
}

type ItemInput struct {
	ProductID *string   `json:"product_id" validate:"required"`
	Title     *string   `json:"title" validate:"required"`
	Quantity  *Quantity `json:"quantity" validate:"required,gte=1"`
	Price     *float64  `json:"price" validate:"required,gte=0"`
}

// Quantity decodes any JSON number without a fractional part, so 2 and 2.0
// are both accepted and 2.5 is a type error.
type Quantity int

// maxQuantity keeps the float64 -> int conversion exact.
const maxQuantity = 1 << 53

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || f != math.Trunc(f) || math.Abs(f) > maxQuantity {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(0)}
	}
	*q = Quantity(f)
	return nil
}

func (in CheckoutInput) Validate() error {
	return validation.Struct("checkout", in)
}

// items copies the validated input into snapshot line items.
func (in CheckoutInput) items() []OrderItem {
	out := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		out = append(out, OrderItem{
			ProductID: *it.ProductID,
			Title:     *it.Title,
			Quantity:  int(*it.Quantity),
			Price:     *it.Price,
		})
	}
	return out
}

type CheckoutResult struct {
	Status  string  `json:"status"`
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}
