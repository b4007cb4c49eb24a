package product

func ptr(s string) *string { return &s }

// Catalog is the storefront's launch assortment inserted by Seed.
func Catalog() []Product {
	return []Product{
		{Title: "Premium Almonds", Description: ptr("Handpicked Californian almonds."), Price: 699.0, Category: CategoryDryFruits, ImageURL: ptr("/images/almonds.jpg"), InStock: true},
		{Title: "Whole Cashews", Description: ptr("Crisp and buttery cashews."), Price: 749.0, Category: CategoryDryFruits, ImageURL: ptr("/images/cashews.jpg"), InStock: true},
		{Title: "Pistachios", Description: ptr("Roasted and lightly salted."), Price: 899.0, Category: CategoryDryFruits, ImageURL: ptr("/images/pistachios.jpg"), InStock: true},
		{Title: "Walnuts", Description: ptr("Omega-3 rich walnut kernels."), Price: 799.0, Category: CategoryDryFruits, ImageURL: ptr("/images/walnuts.jpg"), InStock: true},
		{Title: "Raisins", Description: ptr("Golden seedless raisins."), Price: 299.0, Category: CategoryDryFruits, ImageURL: ptr("/images/raisins.jpg"), InStock: true},
		{Title: "Cardamom (Elaichi)", Description: ptr("Aromatic whole green cardamom."), Price: 459.0, Category: CategorySpices, ImageURL: ptr("/images/cardamom.jpg"), InStock: true},
		{Title: "Black Pepper", Description: ptr("Bold Malabar black pepper."), Price: 349.0, Category: CategorySpices, ImageURL: ptr("/images/blackpepper.jpg"), InStock: true},
		{Title: "Turmeric Powder", Description: ptr("Pure Lakadong turmeric."), Price: 199.0, Category: CategorySpices, ImageURL: ptr("/images/turmeric.jpg"), InStock: true},
		{Title: "Red Chilli Powder", Description: ptr("Vibrant Byadgi chilli powder."), Price: 229.0, Category: CategorySpices, ImageURL: ptr("/images/redchilli.jpg"), InStock: true},
		{Title: "Spice Gift Box", Description: ptr("Curated spice box for gifting."), Price: 1299.0, Category: CategoryGifting, ImageURL: ptr("/images/spicebox.jpg"), InStock: true},
		{Title: "Dry Fruits Combo", Description: ptr("Assorted premium dry fruits."), Price: 1499.0, Category: CategoryCombos, ImageURL: ptr("/images/combobox.jpg"), InStock: true},
	}
}
