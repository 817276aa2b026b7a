package domain

import (
	"time"
)

// LinkedAccount representa a conexão autorizada de um usuário com uma conta
// de anunciante em um provider. A tupla (user_id, provider,
// external_advertiser_id) é única: reconectar a mesma identidade atualiza a
// linha existente em vez de duplicá-la.
type LinkedAccount struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"user_id"`
	Provider             Provider   `json:"provider"`
	ExternalAdvertiserID *string    `json:"external_advertiser_id"`
	AccessToken          string     `json:"-"`
	RefreshToken         *string    `json:"-"`
	ExpiresAt            *time.Time `json:"expires_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// TokenExpired informa se o access token da conta já passou da validade.
// ExpiresAt nulo significa token sem expiração (alguns providers emitem
// tokens de longa duração sem data)
func (a *LinkedAccount) TokenExpired(now time.Time) bool {
	if a.ExpiresAt == nil {
		return false
	}
	return a.ExpiresAt.Before(now)
}

// AdvertiserID retorna o ID externo do anunciante ou vazio quando o provider
// ainda não resolveu a identidade
func (a *LinkedAccount) AdvertiserID() string {
	if a.ExternalAdvertiserID == nil {
		return ""
	}
	return *a.ExternalAdvertiserID
}

// LinkedAccountResponse é a projeção da conta vinculada exposta pela API,
// sem os tokens
type LinkedAccountResponse struct {
	ID                   string     `json:"id"`
	Provider             Provider   `json:"provider"`
	ExternalAdvertiserID *string    `json:"external_advertiser_id"`
	ExpiresAt            *time.Time `json:"expires_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToResponse converte a conta para a projeção pública
func (a *LinkedAccount) ToResponse() *LinkedAccountResponse {
	return &LinkedAccountResponse{
		ID:                   a.ID,
		Provider:             a.Provider,
		ExternalAdvertiserID: a.ExternalAdvertiserID,
		ExpiresAt:            a.ExpiresAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}
