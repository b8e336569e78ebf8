package domain

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultTheme    = ThemeLight
	DefaultLanguage = "en"
)

// User models a registered account. Password carries the bcrypt hash, never
// the plaintext; it is scrubbed to "" before a user leaves the service layer.
type User struct {
	ID             int64   `json:"userID" db:"userid"`
	Name           string  `json:"name" db:"name"`
	Email          string  `json:"email" db:"email"`
	Password       string  `json:"-" db:"password"`
	ProfilePicture *string `json:"profilePicture" db:"profilepicture"`
	Theme          string  `json:"theme" db:"theme"`
	Notifications  bool    `json:"notifications" db:"notifications"`
	Language       string  `json:"language" db:"language"`
}

// Scrub blanks the stored password hash so the struct is safe to serialize.
func (u *User) Scrub() {
	u.Password = ""
}

// Principal is the verified identity attached to a request after the auth
// middleware accepts its token.
type Principal struct {
	UserID int64
	Email  string
}
