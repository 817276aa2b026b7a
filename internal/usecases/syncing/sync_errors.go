package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ad-insights-api/internal/domain"
)

var (
	// ErrPersistence indica falha ao gravar uma linha de insight; propaga
	// como falha da conta em sincronização
	ErrPersistence = errors.New("erro ao persistir insights")
)

// SyncError identifica em qual conta uma passada de sincronização falhou
type SyncError struct {
	AccountID string
	Provider  domain.Provider
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("erro ao sincronizar a conta %s (%s): %v", e.AccountID, e.Provider, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
