package linking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/ad-insights-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_EnsureFreshToken(t *testing.T) {
	futureExpiry := time.Now().Add(2 * time.Hour)
	pastExpiry := time.Now().Add(-2 * time.Hour)

	tests := []struct {
		name          string
		account       *domain.LinkedAccount
		setup         func(source *integratormocks.MockTokenSource, accountRepo *mocks.MockLinkedAccountRepository)
		expectedToken string
		expectedErr   error
	}{
		{
			name: "Token ainda válido não dispara renovação",
			account: &domain.LinkedAccount{
				ID:          "ACC001",
				Provider:    domain.ProviderGoogle,
				AccessToken: "token-vigente",
				ExpiresAt:   &futureExpiry,
			},
			setup:         func(_ *integratormocks.MockTokenSource, _ *mocks.MockLinkedAccountRepository) {},
			expectedToken: "token-vigente",
		},
		{
			name: "Token sem data de expiração é tratado como válido",
			account: &domain.LinkedAccount{
				ID:          "ACC002",
				Provider:    domain.ProviderMeta,
				AccessToken: "token-longa-duracao",
				ExpiresAt:   nil,
			},
			setup:         func(_ *integratormocks.MockTokenSource, _ *mocks.MockLinkedAccountRepository) {},
			expectedToken: "token-longa-duracao",
		},
		{
			name: "Token expirado sem refresh token exige reautorização",
			account: &domain.LinkedAccount{
				ID:          "ACC003",
				Provider:    domain.ProviderMeta,
				AccessToken: "token-expirado",
				ExpiresAt:   &pastExpiry,
			},
			setup:       func(_ *integratormocks.MockTokenSource, _ *mocks.MockLinkedAccountRepository) {},
			expectedErr: ErrTokenRefreshUnsupported,
		},
		{
			name: "Token expirado com refresh token renova uma única vez",
			account: &domain.LinkedAccount{
				ID:           "ACC004",
				Provider:     domain.ProviderGoogle,
				AccessToken:  "token-expirado",
				RefreshToken: stringPtr("refresh-001"),
				ExpiresAt:    &pastExpiry,
			},
			setup: func(source *integratormocks.MockTokenSource, accountRepo *mocks.MockLinkedAccountRepository) {
				newExpiry := time.Now().Add(time.Hour)
				source.EXPECT().
					RefreshToken(gomock.Any(), "refresh-001").
					Return(&integrator.TokenGrant{
						AccessToken: "token-renovado",
						ExpiresAt:   &newExpiry,
					}, nil).
					Times(1)

				accountRepo.EXPECT().
					UpdateToken("ACC004", "token-renovado", nil, gomock.Any()).
					Return(nil)
			},
			expectedToken: "token-renovado",
		},
		{
			name: "Refresh token rotacionado pelo provider é persistido",
			account: &domain.LinkedAccount{
				ID:           "ACC005",
				Provider:     domain.ProviderTikTok,
				AccessToken:  "token-expirado",
				RefreshToken: stringPtr("refresh-antigo"),
				ExpiresAt:    &pastExpiry,
			},
			setup: func(source *integratormocks.MockTokenSource, accountRepo *mocks.MockLinkedAccountRepository) {
				newExpiry := time.Now().Add(time.Hour)
				rotated := "refresh-novo"
				source.EXPECT().
					RefreshToken(gomock.Any(), "refresh-antigo").
					Return(&integrator.TokenGrant{
						AccessToken:  "token-renovado",
						RefreshToken: &rotated,
						ExpiresAt:    &newExpiry,
					}, nil).
					Times(1)

				accountRepo.EXPECT().
					UpdateToken("ACC005", "token-renovado", &rotated, gomock.Any()).
					Return(nil)
			},
			expectedToken: "token-renovado",
		},
		{
			name: "Falha na renovação mantém o último token conhecido",
			account: &domain.LinkedAccount{
				ID:           "ACC006",
				Provider:     domain.ProviderGoogle,
				AccessToken:  "token-expirado",
				RefreshToken: stringPtr("refresh-001"),
				ExpiresAt:    &pastExpiry,
			},
			setup: func(source *integratormocks.MockTokenSource, _ *mocks.MockLinkedAccountRepository) {
				source.EXPECT().
					RefreshToken(gomock.Any(), "refresh-001").
					Return(nil, integrator.ErrAuthorization)
			},
			expectedErr: integrator.ErrAuthorization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := integratormocks.NewMockTokenSource(ctrl)
			source.EXPECT().Provider().Return(tt.account.Provider).AnyTimes()

			accountRepo := mocks.NewMockLinkedAccountRepository(ctrl)

			registry := integrator.NewRegistry()
			registry.RegisterSource(source)

			tt.setup(source, accountRepo)

			service := NewService(registry, accountRepo)

			token, err := service.EnsureFreshToken(context.Background(), tt.account)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, tt.expectedToken, tt.account.AccessToken)
		})
	}
}

func TestService_ObtainToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := integratormocks.NewMockTokenSource(ctrl)
	source.EXPECT().Provider().Return(domain.ProviderMeta).AnyTimes()

	accountRepo := mocks.NewMockLinkedAccountRepository(ctrl)

	registry := integrator.NewRegistry()
	registry.RegisterSource(source)

	service := NewService(registry, accountRepo)

	t.Run("Uma autorização com várias identidades vincula várias contas", func(t *testing.T) {
		expiry := time.Now().Add(60 * 24 * time.Hour)
		grant := &integrator.TokenGrant{AccessToken: "token-longa-duracao", ExpiresAt: &expiry}

		source.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code").
			Return(grant, []integrator.AdvertiserIdentity{
				{ExternalID: "111", Name: "Conta Principal"},
				{ExternalID: "222", Name: "Conta Secundária"},
			}, nil)

		var saved []*domain.LinkedAccount
		accountRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(accounts []*domain.LinkedAccount) error {
				saved = accounts
				return nil
			})

		// A recarga devolve as linhas canônicas persistidas
		accountRepo.EXPECT().
			ListByUser("USER001").
			DoAndReturn(func(string) ([]*domain.LinkedAccount, error) {
				return saved, nil
			})

		accounts, err := service.ObtainToken(context.Background(), domain.ProviderMeta, "auth-code", "USER001")

		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
		for _, account := range accounts {
			assert.NotEmpty(t, account.ID)
			assert.Equal(t, "USER001", account.UserID)
			assert.Equal(t, domain.ProviderMeta, account.Provider)
			assert.Equal(t, "token-longa-duracao", account.AccessToken)
		}
		assert.Equal(t, "111", *accounts[0].ExternalAdvertiserID)
		assert.Equal(t, "222", *accounts[1].ExternalAdvertiserID)
	})

	t.Run("Autorização sem identidade resolvida vincula conta com ID externo nulo", func(t *testing.T) {
		grant := &integrator.TokenGrant{AccessToken: "token"}

		source.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code").
			Return(grant, nil, nil)

		var saved []*domain.LinkedAccount
		accountRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(accounts []*domain.LinkedAccount) error {
				saved = accounts
				return nil
			})

		accountRepo.EXPECT().
			ListByUser("USER001").
			DoAndReturn(func(string) ([]*domain.LinkedAccount, error) {
				return saved, nil
			})

		accounts, err := service.ObtainToken(context.Background(), domain.ProviderMeta, "auth-code", "USER001")

		assert.NoError(t, err)
		assert.Len(t, accounts, 1)
		assert.Nil(t, accounts[0].ExternalAdvertiserID)
	})

	t.Run("Reconexão devolve a linha pré-existente em vez da recém-gerada", func(t *testing.T) {
		grant := &integrator.TokenGrant{AccessToken: "token-novo"}

		source.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code").
			Return(grant, []integrator.AdvertiserIdentity{
				{ExternalID: "111", Name: "Conta Principal"},
			}, nil)

		accountRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		existing := &domain.LinkedAccount{
			ID:                   "ACC-EXISTENTE",
			UserID:               "USER001",
			Provider:             domain.ProviderMeta,
			ExternalAdvertiserID: stringPtr("111"),
			AccessToken:          "token-novo",
		}
		accountRepo.EXPECT().
			ListByUser("USER001").
			Return([]*domain.LinkedAccount{existing}, nil)

		accounts, err := service.ObtainToken(context.Background(), domain.ProviderMeta, "auth-code", "USER001")

		assert.NoError(t, err)
		assert.Len(t, accounts, 1)
		assert.Equal(t, "ACC-EXISTENTE", accounts[0].ID)
	})

	t.Run("Provider desconhecido devolve ErrUnknownProvider", func(t *testing.T) {
		_, err := service.ObtainToken(context.Background(), domain.Provider("linkedin"), "auth-code", "USER001")

		assert.ErrorIs(t, err, integrator.ErrUnknownProvider)
	})
}

func TestService_GetAccount(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(accountRepo *mocks.MockLinkedAccountRepository)
		expectedErr error
	}{
		{
			name: "Conta do próprio usuário é devolvida",
			setup: func(accountRepo *mocks.MockLinkedAccountRepository) {
				accountRepo.EXPECT().
					GetByID("ACC001").
					Return(&domain.LinkedAccount{ID: "ACC001", UserID: "USER001"}, nil)
			},
		},
		{
			name: "Conta inexistente devolve ErrAccountNotFound",
			setup: func(accountRepo *mocks.MockLinkedAccountRepository) {
				accountRepo.EXPECT().
					GetByID("ACC001").
					Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name: "Conta de outro usuário é tratada como inexistente",
			setup: func(accountRepo *mocks.MockLinkedAccountRepository) {
				accountRepo.EXPECT().
					GetByID("ACC001").
					Return(&domain.LinkedAccount{ID: "ACC001", UserID: "OUTRO-USER"}, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := mocks.NewMockLinkedAccountRepository(ctrl)
			tt.setup(accountRepo)

			service := NewService(integrator.NewRegistry(), accountRepo)

			account, err := service.GetAccount("USER001", "ACC001")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, account)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "ACC001", account.ID)
		})
	}
}

func TestService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockLinkedAccountRepository(ctrl)
	service := NewService(integrator.NewRegistry(), accountRepo)

	t.Run("Desconectar conta do próprio usuário remove a linha", func(t *testing.T) {
		accountRepo.EXPECT().
			GetByID("ACC001").
			Return(&domain.LinkedAccount{ID: "ACC001", UserID: "USER001"}, nil)
		accountRepo.EXPECT().
			Delete("ACC001").
			Return(nil)

		err := service.Disconnect("USER001", "ACC001")
		assert.NoError(t, err)
	})

	t.Run("Desconectar conta de outro usuário falha sem remover", func(t *testing.T) {
		accountRepo.EXPECT().
			GetByID("ACC001").
			Return(&domain.LinkedAccount{ID: "ACC001", UserID: "OUTRO-USER"}, nil)

		err := service.Disconnect("USER001", "ACC001")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestLinkedAccount_TokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Minute)
	after := now.Add(time.Minute)

	tests := []struct {
		name     string
		expiry   *time.Time
		expected bool
	}{
		{name: "Sem data de expiração nunca expira", expiry: nil, expected: false},
		{name: "Expiração no futuro não expira", expiry: &after, expected: false},
		{name: "Expiração no passado expira", expiry: &before, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &domain.LinkedAccount{ExpiresAt: tt.expiry}
			assert.Equal(t, tt.expected, account.TokenExpired(now))
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
