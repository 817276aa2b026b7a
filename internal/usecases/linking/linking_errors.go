package linking

import (
	"errors"

	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
)

var (
	// ErrAccountNotFound indica que a conta não existe ou não pertence ao usuário
	ErrAccountNotFound = errors.New("conta vinculada não encontrada")

	// ErrTokenRefreshUnsupported indica que a conta precisa de nova autorização
	ErrTokenRefreshUnsupported = integrator.ErrTokenRefreshUnsupported
)
