package catalog

import "github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"

// Demo catalog for the Chowpal assistant. Prices are in kobo.

var menuItems = []entity.CatalogItem{
	{ID: 101, Name: "Puzzle Honey Sauced Chicken X French Fries", Price: 9000, VendorName: "Item 7 (Go)", Description: "Special honey glazed chicken with crispy fries.", Image: "/courses/grilled_chicken.png"},
	{ID: 102, Name: "Jollof Rice & Grilled Chicken", Price: 4500, VendorName: "The Place", Description: "Classic Nigerian Smokey Jollof with grilled chicken.", Image: "/courses/jollof_rice.png"},
	{ID: 103, Name: "Special Fried Rice", Price: 5200, VendorName: "Green Pepper", Description: "Loaded with fresh veggies, shrimp and liver.", Image: "/courses/jollof_rice.png"},
	{ID: 104, Name: "Refuel Meal", Price: 3500, VendorName: "Chicken Republic", Description: "Rice, Spaghetti or Chips with Chicken.", Image: "/courses/grilled_chicken.png"},
	{ID: 105, Name: "Pepperoni Feast", Price: 7500, VendorName: "Dominos Pizza", Description: "Pepperoni, cheese, and tomato sauce.", Image: "/courses/pizza_pepperoni.png"},
	{ID: 106, Name: "Chocolate Devotion", Price: 4000, VendorName: "Cold Stone", Description: "Chocolate ice cream with fudge and chips.", Image: "/courses/ice_cream.png"},
	{ID: 107, Name: "Meat Pie", Price: 1200, VendorName: "Eric Kayser", Description: "Flaky pastry filled with seasoned minced meat.", Image: "/courses/meat_pie.png"},
	{ID: 108, Name: "Seafood Platter", Price: 18000, VendorName: "Ocean Basket", Description: "Fish, calamari, prawns and mussels.", Image: "/courses/seafood_platter.png"},
	{ID: 109, Name: "Asun (Spicy Goat Meat)", Price: 4500, VendorName: "Mega Chicken", Description: "Spicy roasted goat meat chopped into bite-sized pieces.", Image: "/courses/asun_goat.png"},
	{ID: 110, Name: "Chicken Club Sandwich", Price: 4000, VendorName: "The Place", Description: "Three layers of toast, chicken, lettuce, tomato and egg.", Image: "/courses/club_sandwich.png"},
	{ID: 111, Name: "Chicken & Chips", Price: 3500, VendorName: "Chicken Republic", Description: "Crispy fried chicken with french fries.", Image: "/courses/chicken_chips.png"},
	{ID: 112, Name: "Prawn Pasta", Price: 8500, VendorName: "Ocean Basket", Description: "Creamy pasta with fresh prawns.", Image: "/courses/pasta.png"},
	{ID: 113, Name: "Croissant", Price: 2500, VendorName: "Eric Kayser", Description: "Buttery, flaky french pastry.", Image: "/courses/croissant.png"},
	{ID: 114, Name: "Egusi Soup & Pounded Yam", Price: 5500, VendorName: "The Place", Description: "Rich melon seed soup with pounded yam.", Image: "/courses/egusi_soup.png"},
	{ID: 115, Name: "Grilled Catfish", Price: 9000, VendorName: "Mega Chicken", Description: "Whole grilled catfish with spicy sauce.", Image: "/courses/catfish.png"},
}

var sponsoredItems = []entity.CatalogItem{
	{ID: 901, Name: "Ember Co. Hot Sauce", Price: 6000, VendorName: "Harvest Groceries", Description: "Spicy kick for your meal. In stock.", Image: "/courses/sauce.png", Sponsored: true},
	{ID: 902, Name: "Coca-Cola Zero", Price: 500, VendorName: "Coca-Cola", Description: "Zero sugar, zero calories.", Image: "/courses/coke_zero.png", Sponsored: true},
	{ID: 903, Name: "Desert Cottages", Price: 150000, VendorName: "Pueblo & Pine", Description: "Expansive residences with desert vistas.", Image: "/courses/cottage.png", Sponsored: true},
}

var vendors = []entity.Vendor{
	{ID: 1, Name: "Green Pepper", Image: "/courses/jollof_rice.png", Rating: "4.8", DeliveryTime: "20-30m", Categories: []string{"Chinese", "Rice"}, Location: "Lekki Phase 1"},
	{ID: 2, Name: "Item 7 (Go)", Image: "/courses/grilled_chicken.png", Rating: "4.5", DeliveryTime: "30-45m", Categories: []string{"Grill", "Rice"}, Location: "Surulere"},
	{ID: 3, Name: "Cold Stone", Image: "/courses/ice_cream.png", Rating: "4.9", DeliveryTime: "15-25m", Categories: []string{"Ice Cream", "Dessert"}, Location: "Victoria Island"},
	{ID: 4, Name: "Chicken Republic", Image: "/courses/grilled_chicken.png", Rating: "4.2", DeliveryTime: "25-35m", Categories: []string{"Fast Food", "Chicken"}, Location: "Yaba"},
	{ID: 5, Name: "The Place", Image: "/courses/jollof_rice.png", Rating: "4.4", DeliveryTime: "35-50m", Categories: []string{"Nigerian", "Continental"}, Location: "Ikeja"},
	{ID: 6, Name: "Mega Chicken", Image: "/courses/chicken_chips.png", Rating: "4.3", DeliveryTime: "40-50m", Categories: []string{"Fast Food", "Local"}, Location: "Lekki"},
	{ID: 7, Name: "Ocean Basket", Image: "/courses/seafood_platter.png", Rating: "4.7", DeliveryTime: "45-60m", Categories: []string{"Seafood", "Sushi"}, Location: "Victoria Island"},
	{ID: 8, Name: "Eric Kayser", Image: "/courses/croissant.png", Rating: "4.6", DeliveryTime: "20-40m", Categories: []string{"Pastries", "French"}, Location: "Ikoyi"},
}
