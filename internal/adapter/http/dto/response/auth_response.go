package response

import "oficina_xpto/internal/domain/entities"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func FromToken(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"is_active"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Active:   u.Active,
	}
}
