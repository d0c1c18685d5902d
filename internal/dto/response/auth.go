package response

import (
	"time"

	"facility-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"userId"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
