package domain

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"` // USER | ADMIN
}

// Session is the persisted auth state. LoggedIn is derived, never stored:
// a session is logged in exactly when both token and user are present.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (s Session) LoggedIn() bool { return s.Token != "" && s.User != nil }

func (s Session) IsAdmin() bool { return s.LoggedIn() && s.User.Role == "ADMIN" }
