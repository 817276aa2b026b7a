package domain

// Provider identifica uma plataforma de anúncios externa suportada
type Provider string

const (
	ProviderMeta   Provider = "meta"
	ProviderGoogle Provider = "google"
	ProviderTikTok Provider = "tiktok"
)

// KnownProviders lista os providers com adapter registrado
var KnownProviders = []Provider{ProviderMeta, ProviderGoogle, ProviderTikTok}

// IsValid verifica se o provider é um dos suportados
func (p Provider) IsValid() bool {
	switch p {
	case ProviderMeta, ProviderGoogle, ProviderTikTok:
		return true
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}
