package factories

import "github.com/chrisdamba/menuengine/internal/models"

type categoryTemplate struct {
	Name     string
	Type     models.ItemType
	MinPrice int
	MaxPrice int
	Items    []string
	Tags     []string
}

var catalogue = []categoryTemplate{
	{
		Name: "Main Dishes", Type: models.ItemTypeMainDish, MinPrice: 12000, MaxPrice: 45000,
		Items: []string{
			"Classic Cheeseburger", "BBQ Bacon Burger", "Grilled Chicken", "BBQ Ribs",
			"Grilled Salmon", "Chicken Tikka Masala", "Beef Madras", "Spaghetti Carbonara",
			"Lasagna", "Pad Thai", "Green Curry", "Ramen", "Burrito", "Kung Pao Chicken",
			"Coq au Vin", "Beef Bourguignon",
		},
		Tags: []string{"grill", "rice", "noodle", "spicy", "signature"},
	},
	{
		Name: "Shareables", Type: models.ItemTypeShareable, MinPrice: 15000, MaxPrice: 40000,
		Items: []string{
			"Mixed Grill Platter", "Nachos", "Chicken Wings", "Tapas Sampler",
			"Dumplings", "Hummus Platter", "Family Fried Chicken Bucket",
		},
		Tags: []string{"sharing", "family", "platter"},
	},
	{
		Name: "Sides", Type: models.ItemTypeSide, MinPrice: 5000, MaxPrice: 15000,
		Items: []string{
			"Fries", "Onion Rings", "Coleslaw", "Garlic Bread", "Naan Bread",
			"Steamed Rice", "Caesar Salad", "Greek Salad",
		},
		Tags: []string{"light", "fresh", "vegan"},
	},
	{
		Name: "Drinks", Type: models.ItemTypeDrink, MinPrice: 3000, MaxPrice: 12000,
		Items: []string{
			"Lemonade", "Iced Tea", "Cola", "Chocolate Shake", "Vanilla Shake",
			"Strawberry Smoothie", "Espresso", "Cappuccino", "Fresh Orange Juice",
		},
		Tags: []string{"fresh", "cold"},
	},
	{
		Name: "Desserts", Type: models.ItemTypeDessert, MinPrice: 6000, MaxPrice: 18000,
		Items: []string{
			"Tiramisu", "Apple Pie", "Baklava", "Crème Brûlée", "Mango Sticky Rice",
			"Chocolate Brownie", "Cheesecake",
		},
		Tags: []string{"sweet"},
	},
	{
		Name: "Kids", Type: models.ItemTypeKids, MinPrice: 8000, MaxPrice: 15000,
		Items: []string{"Kids Burger", "Kids Pasta", "Junior Chicken Strips"},
	},
	{
		Name: "Add-ons", Type: models.ItemTypeAddOn, MinPrice: 2000, MaxPrice: 6000,
		Items: []string{"Extra Cheese", "Garlic Dip", "Chili Sauce", "Extra Patty"},
	},
}
