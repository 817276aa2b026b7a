package domain

// TokenResponse é a resposta dos endpoints oauth/access_token da Graph API
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AdAccount é uma conta de anúncios retornada por /me/adaccounts
type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}
