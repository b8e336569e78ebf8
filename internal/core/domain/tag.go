package domain

// Tag is a free-form label owned by a single user.
type Tag struct {
	ID     int64  `json:"tagID" db:"tagid"`
	Name   string `json:"name" db:"name"`
	UserID int64  `json:"userID" db:"userid"`
}
