package domain

import "encoding/json"

// TokenData é o bloco data da resposta de oauth2/access_token e de
// oauth2/refresh_token. Os IDs de anunciante chegam como número
type TokenData struct {
	AccessToken   string        `json:"access_token"`
	RefreshToken  string        `json:"refresh_token"`
	ExpiresIn     int64         `json:"expires_in"`
	AdvertiserIDs []json.Number `json:"advertiser_ids"`
	AdvertiserID  json.Number   `json:"advertiser_id"`
}
