package order

import (
	"encoding/json"
	"errors"
	"testing"

	"priyansh-be/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func qtyPtr(i int) *Quantity      { q := Quantity(i); return &q }
func floatPtr(f float64) *float64 { return &f }

func validInput() CheckoutInput {
	return CheckoutInput{
		CustomerName:    strPtr("Asha"),
		CustomerEmail:   strPtr("asha@example.com"),
		ShippingAddress: strPtr("12 MG Road, Pune"),
		Items: []ItemInput{
			{ProductID: strPtr("p1"), Title: strPtr("Premium Almonds"), Quantity: qtyPtr(2), Price: floatPtr(699)},
			{ProductID: strPtr("p5"), Title: strPtr("Raisins"), Quantity: qtyPtr(1), Price: floatPtr(299)},
		},
	}
}

func TestCheckoutInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validInput().Validate())
	})

	t.Run("Empty items accepted", func(t *testing.T) {
		in := validInput()
		in.Items = []ItemInput{}
		assert.NoError(t, in.Validate())
	})

	t.Run("Missing items", func(t *testing.T) {
		in := validInput()
		in.Items = nil

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("items", "required"))
	})

	t.Run("Item bounds", func(t *testing.T) {
		in := validInput()
		in.Items[0].Quantity = qtyPtr(0)
		in.Items[1].Price = floatPtr(-1)

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("items[0].quantity", "gte"))
		assert.True(t, verr.Has("items[1].price", "gte"))
	})

	t.Run("Missing numeric fields", func(t *testing.T) {
		in := validInput()
		in.Items[0].Quantity = nil
		in.Items[0].Price = nil

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("items[0].quantity", "required"))
		assert.True(t, verr.Has("items[0].price", "required"))
	})

	t.Run("Zero price allowed", func(t *testing.T) {
		in := validInput()
		in.Items[0].Price = floatPtr(0)
		assert.NoError(t, in.Validate())
	})

	t.Run("Missing customer fields", func(t *testing.T) {
		in := validInput()
		in.CustomerName = nil
		in.ShippingAddress = nil

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("customer_name", "required"))
		assert.True(t, verr.Has("shipping_address", "required"))
		assert.False(t, verr.Has("customer_email", "required"))
	})

	t.Run("Empty strings accepted", func(t *testing.T) {
		in := validInput()
		in.CustomerName = strPtr("")
		in.CustomerEmail = strPtr("")
		in.ShippingAddress = strPtr("")
		in.Items[0].ProductID = strPtr("")
		in.Items[0].Title = strPtr("")

		assert.NoError(t, in.Validate())
	})

	t.Run("Missing item strings", func(t *testing.T) {
		in := validInput()
		in.Items[1].ProductID = nil
		in.Items[1].Title = nil

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("items[1].product_id", "required"))
		assert.True(t, verr.Has("items[1].title", "required"))
	})
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Quantity
		wantErr bool
	}{
		{name: "Integer", body: `2`, want: 2},
		{name: "Whole float", body: `2.0`, want: 2},
		{name: "Exponent", body: `1e2`, want: 100},
		{name: "Zero", body: `0`, want: 0},
		{name: "Fraction", body: `2.5`, wantErr: true},
		{name: "String", body: `"two"`, wantErr: true},
		{name: "Bool", body: `true`, wantErr: true},
		{name: "Too large", body: `1e300`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := json.Unmarshal([]byte(tt.body), &q)

			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				require.True(t, errors.As(err, &typeErr), "got %v", err)
				assert.Equal(t, "int", typeErr.Type.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestCheckoutInput_DecodeQuantity(t *testing.T) {
	body := `{"customer_name":"A","customer_email":"","shipping_address":"X",
		"items":[{"product_id":"p1","title":"T","quantity":3.0,"price":10}]}`

	var in CheckoutInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	require.NoError(t, in.Validate())

	assert.Equal(t, 3, in.items()[0].Quantity)
	assert.Equal(t, "", *in.CustomerEmail)

	t.Run("Null quantity is missing", func(t *testing.T) {
		var in CheckoutInput
		require.NoError(t, json.Unmarshal([]byte(`{"customer_name":"A","customer_email":"e","shipping_address":"X",
			"items":[{"product_id":"p1","title":"T","quantity":null,"price":10}]}`), &in))

		var verr *validation.ValidationError
		require.True(t, errors.As(in.Validate(), &verr))
		assert.True(t, verr.Has("items[0].quantity", "required"))
	})
}

func TestOrder_Validate(t *testing.T) {
	o := Order{
		CustomerName:    "Asha",
		CustomerEmail:   "asha@example.com",
		ShippingAddress: "Pune",
		Items:           []OrderItem{{ProductID: "p1", Title: "Walnuts", Quantity: 1, Price: 799}},
		Subtotal:        799,
		Tax:             39.95,
		Total:           838.95,
	}
	assert.NoError(t, o.Validate())

	o.Total = -1
	var verr *validation.ValidationError
	require.True(t, errors.As(o.Validate(), &verr))
	assert.True(t, verr.Has("total", "gte"))
}

func TestCheckoutInput_ItemsAreCopies(t *testing.T) {
	in := validInput()
	items := in.items()

	*in.Items[0].Price = 1
	*in.Items[0].Title = "Changed"

	assert.Equal(t, 699.0, items[0].Price)
	assert.Equal(t, "Premium Almonds", items[0].Title)
}
