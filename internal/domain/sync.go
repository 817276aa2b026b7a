package domain

// SyncState representa o estado de uma conta dentro de um ciclo de
// sincronização
type SyncState string

const (
	SyncStatePending     SyncState = "PENDING"
	SyncStateFetching    SyncState = "FETCHING"
	SyncStateNormalizing SyncState = "NORMALIZING"
	SyncStatePersisted   SyncState = "PERSISTED"
	SyncStateFailed      SyncState = "FAILED"
)

// SyncResult é o resultado por conta de um ciclo de sincronização. A falha de
// uma conta nunca aborta o ciclo: cada conta aparece na lista com seu próprio
// sucesso ou erro
type SyncResult struct {
	AccountID        string   `json:"account_id"`
	Provider         Provider `json:"provider"`
	Success          bool     `json:"success"`
	RecordsProcessed int      `json:"records_processed,omitempty"`
	Error            string   `json:"error,omitempty"`
}
