package catalog

var menuCategories = []Category{
	{
		ID:        "appetizers",
		Name:      "Appetizers",
		Image:     "https://images.pexels.com/photos/1099680/pexels-photo-1099680.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 8,
	},
	{
		ID:        "mains",
		Name:      "Main Dishes",
		Image:     "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 12,
	},
	{
		ID:        "desserts",
		Name:      "Desserts",
		Image:     "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 6,
	},
	{
		ID:        "beverages",
		Name:      "Beverages",
		Image:     "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 10,
	},
	{
		ID:        "pizza",
		Name:      "Pizza",
		Image:     "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 8,
	},
	{
		ID:        "burgers",
		Name:      "Burgers",
		Image:     "https://images.pexels.com/photos/1556909/pexels-photo-1556909.jpeg?auto=compress&cs=tinysrgb&w=500",
		ItemCount: 5,
	},
}

var menuItems = []MenuItem{
	{
		ID:              "1",
		Name:            "Crispy Spring Rolls",
		Description:     "Fresh vegetables wrapped in crispy pastry, served with sweet chili sauce",
		Price:           299,
		Image:           "https://images.pexels.com/photos/1099680/pexels-photo-1099680.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "appetizers",
		Featured:        true,
		Rating:          4.5,
		PreparationTime: "15-20 min",
	},
	{
		ID:              "2",
		Name:            "Chicken Wings",
		Description:     "Spicy buffalo wings with ranch dip and celery sticks",
		Price:           399,
		Image:           "https://images.pexels.com/photos/60616/fried-chicken-chicken-fried-crunchy-60616.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "appetizers",
		Rating:          4.8,
		PreparationTime: "20-25 min",
	},
	{
		ID:              "3",
		Name:            "Mozzarella Sticks",
		Description:     "Golden fried mozzarella with marinara sauce",
		Price:           349,
		Image:           "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "appetizers",
		Rating:          4.3,
		PreparationTime: "10-15 min",
	},
	{
		ID:              "4",
		Name:            "Grilled Salmon",
		Description:     "Fresh Atlantic salmon with lemon herb butter and seasonal vegetables",
		Price:           799,
		Image:           "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "mains",
		Featured:        true,
		Rating:          4.9,
		PreparationTime: "25-30 min",
	},
	{
		ID:              "5",
		Name:            "Chicken Tikka Masala",
		Description:     "Tender chicken in rich tomato and cream sauce with basmati rice",
		Price:           599,
		Image:           "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "mains",
		Rating:          4.7,
		PreparationTime: "30-35 min",
	},
	{
		ID:              "6",
		Name:            "Beef Wellington",
		Description:     "Premium beef tenderloin wrapped in puff pastry with mushroom duxelles",
		Price:           1299,
		Image:           "https://images.pexels.com/photos/769289/pexels-photo-769289.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "mains",
		Rating:          4.8,
		PreparationTime: "45-50 min",
	},
	{
		ID:              "7",
		Name:            "Margherita Pizza",
		Description:     "Classic pizza with fresh mozzarella, tomatoes, and basil",
		Price:           549,
		Image:           "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "pizza",
		Featured:        true,
		Rating:          4.6,
		PreparationTime: "15-20 min",
	},
	{
		ID:              "8",
		Name:            "Pepperoni Supreme",
		Description:     "Loaded with pepperoni, mushrooms, bell peppers, and extra cheese",
		Price:           699,
		Image:           "https://images.pexels.com/photos/2619970/pexels-photo-2619970.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "pizza",
		Rating:          4.4,
		PreparationTime: "18-22 min",
	},
	{
		ID:              "9",
		Name:            "Classic Cheeseburger",
		Description:     "Juicy beef patty with cheese, lettuce, tomato, and special sauce",
		Price:           449,
		Image:           "https://images.pexels.com/photos/1556909/pexels-photo-1556909.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "burgers",
		Rating:          4.5,
		PreparationTime: "12-15 min",
	},
	{
		ID:              "10",
		Name:            "Veggie Burger",
		Description:     "Plant-based patty with avocado, sprouts, and chipotle mayo",
		Price:           399,
		Image:           "https://images.pexels.com/photos/1556698/pexels-photo-1556698.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "burgers",
		Featured:        true,
		Rating:          4.2,
		PreparationTime: "10-12 min",
	},
	{
		ID:              "11",
		Name:            "Chocolate Lava Cake",
		Description:     "Warm chocolate cake with molten center, served with vanilla ice cream",
		Price:           349,
		Image:           "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "desserts",
		Rating:          4.9,
		PreparationTime: "8-10 min",
	},
	{
		ID:              "12",
		Name:            "Tiramisu",
		Description:     "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone",
		Price:           299,
		Image:           "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "desserts",
		Rating:          4.6,
		PreparationTime: "5 min",
	},
	{
		ID:              "13",
		Name:            "Fresh Orange Juice",
		Description:     "Freshly squeezed orange juice, no added sugar",
		Price:           149,
		Image:           "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "beverages",
		Rating:          4.3,
		PreparationTime: "2-3 min",
	},
	{
		ID:              "14",
		Name:            "Iced Coffee",
		Description:     "Cold brew coffee with ice and your choice of milk",
		Price:           199,
		Image:           "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=500",
		Category:        "beverages",
		Rating:          4.4,
		PreparationTime: "3-5 min",
	},
}
