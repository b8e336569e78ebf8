package domain

// Category groups tasks under a user-chosen name and color.
type Category struct {
	ID     int64  `json:"categoryID" db:"categoryid"`
	Name   string `json:"name" db:"name"`
	Color  string `json:"color" db:"color"`
	UserID int64  `json:"userID" db:"userid"`
}

// DefaultCategories are seeded for every new account at registration.
var DefaultCategories = []Category{
	{Name: "Work", Color: "#0d6efd"},
	{Name: "Personal", Color: "#198754"},
	{Name: "Shopping", Color: "#ffc107"},
	{Name: "Health", Color: "#dc3545"},
}
