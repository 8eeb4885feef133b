package user

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// Profile is the read model for a user, as seen by a particular viewer.
type Profile struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar,omitempty"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func NewProfile(u *User, isSubscribed bool) Profile {
	return Profile{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Avatar:       u.Avatar,
		IsSubscribed: isSubscribed,
	}
}
