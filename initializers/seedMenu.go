package initializers

import (
	"os"

	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type seedItem struct {
	name        string
	description string
	price       float64
	tags        string
}

var seedMenu = map[string]struct {
	description string
	items       []seedItem
}{
	"Appetizers": {
		description: "Start your meal with our delicious appetizers",
		items: []seedItem{
			{"Bruschetta", "Toasted bread topped with fresh tomatoes, basil, and garlic", 8.99, `["vegetarian"]`},
			{"Mozzarella Sticks", "Crispy breaded mozzarella served with marinara sauce", 7.99, `["vegetarian"]`},
			{"Spinach Artichoke Dip", "Creamy dip with spinach, artichokes, and melted cheese", 9.99, `["vegetarian"]`},
		},
	},
	"Soups": {
		description: "Warm and comforting soups made with fresh ingredients",
		items: []seedItem{
			{"Tomato Basil Soup", "Rich tomato soup with fresh basil and cream", 6.99, `["vegetarian"]`},
			{"Chicken Noodle Soup", "Homestyle chicken soup with vegetables and egg noodles", 7.99, ""},
			{"French Onion Soup", "Classic French onion soup with melted cheese", 8.99, `["vegetarian"]`},
		},
	},
	"Main Course": {
		description: "Our signature main dishes prepared with care",
		items: []seedItem{
			{"Grilled Salmon", "Fresh Atlantic salmon grilled to perfection with herbs", 24.99, `["gluten-free"]`},
			{"Chicken Parmesan", "Breaded chicken breast with marinara and melted cheese", 19.99, ""},
			{"Margherita Pizza", "Wood-fired pizza with tomatoes, mozzarella and basil", 14.99, `["vegetarian"]`},
		},
	},
	"Desserts": {
		description: "Sweet endings to your perfect meal",
		items: []seedItem{
			{"Tiramisu", "Classic Italian dessert with espresso-soaked ladyfingers", 7.99, `["vegetarian"]`},
			{"Chocolate Lava Cake", "Warm chocolate cake with a molten center", 8.99, `["vegetarian"]`},
		},
	},
	"Beverages": {
		description: "Refreshing drinks and hot beverages",
		items: []seedItem{
			{"Fresh Lemonade", "House-made lemonade with fresh mint", 3.99, `["vegan"]`},
			{"Espresso", "Double shot of our house blend", 2.99, `["vegan"]`},
		},
	},
}

// SeedSampleMenu populates the menu with sample categories and items when
// SEED_MENU=true. FirstOrCreate keeps it idempotent across restarts.
func SeedSampleMenu() {
	if os.Getenv("SEED_MENU") != "true" {
		return
	}

	for name, data := range seedMenu {
		category := models.Category{Name: name}
		if err := DB.Where("name = ?", name).
			Attrs(models.Category{Description: data.description}).
			FirstOrCreate(&category).Error; err != nil {
			logrus.Errorf("Failed to seed category %s: %v", name, err)
			continue
		}

		for _, it := range data.items {
			item := models.MenuItem{Name: it.name, CategoryID: int(category.ID)}
			attrs := models.MenuItem{
				Description: it.description,
				Price:       it.price,
				IsAvailable: true,
			}
			if it.tags != "" {
				attrs.DietaryTags = datatypes.JSON(it.tags)
			}
			if err := DB.Where("name = ? AND category_id = ?", it.name, category.ID).
				Attrs(attrs).
				FirstOrCreate(&item).Error; err != nil {
				logrus.Errorf("Failed to seed menu item %s: %v", it.name, err)
			}
		}
	}
	logrus.Info("Sample menu seeded.")
}
