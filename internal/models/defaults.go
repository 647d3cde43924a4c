package models

import "github.com/google/uuid"

// defaultCategories are cloned for every user on registration.
var defaultCategories = []Category{
	{Name: "Salary", Color: "#34D399", Icon: "wallet", Group: IncomeGroup},
	{Name: "Freelance / Side Hustle", Color: "#60A5FA", Icon: "briefcase", Group: IncomeGroup},
	{Name: "Business Income", Color: "#F59E0B", Icon: "building", Group: IncomeGroup},
	{Name: "Investment Returns", Color: "#10B981", Icon: "trending-up", Group: IncomeGroup},
	{Name: "Gifts & Bonuses", Color: "#A78BFA", Icon: "gift", Group: IncomeGroup},
	{Name: "Refunds / Reimbursements", Color: "#6EE7B7", Icon: "rotate-ccw", Group: IncomeGroup},

	{Name: "Rent / Mortgage", Color: "#EF4444", Icon: "home", Group: "Essentials"},
	{Name: "Utilities", Color: "#F97316", Icon: "zap", Group: "Essentials"},
	{Name: "Groceries", Color: "#84CC16", Icon: "shopping-cart", Group: "Essentials"},
	{Name: "Transportation", Color: "#6366F1", Icon: "car", Group: "Essentials"},
	{Name: "Internet / Mobile", Color: "#8B5CF6", Icon: "wifi", Group: "Essentials"},

	{Name: "Dining Out / Coffee", Color: "#EC4899", Icon: "coffee", Group: "Personal"},
	{Name: "Shopping", Color: "#D946EF", Icon: "shopping-bag", Group: "Personal"},
	{Name: "Subscriptions", Color: "#6B7280", Icon: "tv", Group: "Personal"},
	{Name: "Gym / Fitness", Color: "#14B8A6", Icon: "dumbbell", Group: "Personal"},
	{Name: "Salon / Spa", Color: "#F472B6", Icon: "heart", Group: "Personal"},

	{Name: "Tuition / Courses", Color: "#3B82F6", Icon: "book", Group: "Education & Work"},
	{Name: "Stationery / Books", Color: "#64748B", Icon: "pen-tool", Group: "Education & Work"},
	{Name: "Online Tools / Software", Color: "#6B7280", Icon: "laptop", Group: "Education & Work"},
	{Name: "Coworking / Study Materials", Color: "#475569", Icon: "briefcase", Group: "Education & Work"},

	{Name: "Medicines", Color: "#EF4444", Icon: "pill", Group: "Health"},
	{Name: "Doctor Visits", Color: "#DC2626", Icon: "stethoscope", Group: "Health"},
	{Name: "Health Insurance", Color: "#4B5563", Icon: "shield", Group: "Health"},

	{Name: "Movies / Shows", Color: "#8B5CF6", Icon: "film", Group: "Leisure & Entertainment"},
	{Name: "Travel / Vacations", Color: "#0EA5E9", Icon: "plane", Group: "Leisure & Entertainment"},
	{Name: "Games", Color: "#EC4899", Icon: "gamepad", Group: "Leisure & Entertainment"},
	{Name: "Events", Color: "#F59E0B", Icon: "ticket", Group: "Leisure & Entertainment"},

	{Name: "Loan EMIs", Color: "#475569", Icon: "landmark", Group: "Financial"},
	{Name: "Credit Card Payments", Color: "#94A3B8", Icon: "credit-card", Group: "Financial"},
	{Name: "Investments / Savings", Color: "#059669", Icon: "pie-chart", Group: "Financial"},
	{Name: "Insurance", Color: "#4B5563", Icon: "shield", Group: "Financial"},
}

// DefaultCategories returns fresh copies of the default categories owned
// by the user, each with a new ID.
func DefaultCategories(userID uuid.UUID) []Category {
	categories := make([]Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		c.ID = uuid.New()
		c.UserID = userID
		categories = append(categories, c)
	}

	return categories
}
