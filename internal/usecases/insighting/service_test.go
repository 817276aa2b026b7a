package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
	linkingmocks "github.com/vfg2006/ad-insights-api/internal/usecases/linking/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetCampaignInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := linkingmocks.NewMockLinker(ctrl)
	campaignRepo := mocks.NewMockCampaignInsightRepository(ctrl)

	service := NewService(linker, campaignRepo, nil, nil)

	startDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("Conta do usuário devolve as linhas do período", func(t *testing.T) {
		linker.EXPECT().
			GetAccount("USER001", "ACC001").
			Return(&domain.LinkedAccount{ID: "ACC001", UserID: "USER001"}, nil)

		expected := []*domain.CampaignInsight{
			{AccountID: "ACC001", CampaignID: "CAMP001"},
		}
		campaignRepo.EXPECT().
			GetByDateRange("ACC001", startDate, endDate).
			Return(expected, nil)

		insights, err := service.GetCampaignInsights("USER001", "ACC001", startDate, endDate)

		assert.NoError(t, err)
		assert.Equal(t, expected, insights)
	})

	t.Run("Conta de outro usuário não expõe insights", func(t *testing.T) {
		linker.EXPECT().
			GetAccount("USER001", "ACC-ALHEIA").
			Return(nil, linking.ErrAccountNotFound)

		insights, err := service.GetCampaignInsights("USER001", "ACC-ALHEIA", startDate, endDate)

		assert.ErrorIs(t, err, linking.ErrAccountNotFound)
		assert.Nil(t, insights)
	})
}

func TestService_GetAdInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := linkingmocks.NewMockLinker(ctrl)
	adRepo := mocks.NewMockAdInsightRepository(ctrl)

	service := NewService(linker, nil, adRepo, nil)

	startDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	linker.EXPECT().
		GetAccount("USER001", "ACC001").
		Return(&domain.LinkedAccount{ID: "ACC001", UserID: "USER001"}, nil)

	expected := []*domain.AdInsight{
		{AccountID: "ACC001", AdID: "AD001"},
	}
	adRepo.EXPECT().
		GetByDateRange("ACC001", startDate, endDate).
		Return(expected, nil)

	insights, err := service.GetAdInsights("USER001", "ACC001", startDate, endDate)

	assert.NoError(t, err)
	assert.Equal(t, expected, insights)
}

func TestService_ListApiRequestLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linker := linkingmocks.NewMockLinker(ctrl)
	logRepo := mocks.NewMockApiRequestLogRepository(ctrl)

	service := NewService(linker, nil, nil, logRepo)

	t.Run("Com accountID lista apenas o audit log da conta", func(t *testing.T) {
		linker.EXPECT().
			GetAccount("USER001", "ACC001").
			Return(&domain.LinkedAccount{ID: "ACC001", UserID: "USER001"}, nil)

		expected := []*domain.ApiRequestLog{
			{AccountID: "ACC001", Endpoint: "/insights"},
		}
		logRepo.EXPECT().
			ListByAccount("ACC001", uint64(50)).
			Return(expected, nil)

		entries, err := service.ListApiRequestLogs("USER001", "ACC001", 50)

		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
	})

	t.Run("Sem accountID filtra pelas contas do usuário", func(t *testing.T) {
		linker.EXPECT().
			GetUserAccounts("USER001").
			Return([]*domain.LinkedAccount{
				{ID: "ACC001", UserID: "USER001"},
			}, nil)

		logRepo.EXPECT().
			ListRecent(uint64(100)).
			Return([]*domain.ApiRequestLog{
				{AccountID: "ACC001", Endpoint: "/insights"},
				{AccountID: "ACC-ALHEIA", Endpoint: "/insights"},
			}, nil)

		entries, err := service.ListApiRequestLogs("USER001", "", 100)

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "ACC001", entries[0].AccountID)
	})
}
