package domain

// TokenResponse é a resposta do endpoint de token do Google OAuth.
// RefreshToken só vem na troca inicial de código, nunca no refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// UserInfo identifica o usuário autorizado via oauth2/v2/userinfo
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
