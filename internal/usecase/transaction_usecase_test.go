package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
	"github.com/iho/finbooks/internal/usecase/mocks"
)

func TestPostTransaction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().GetByCode(gomock.Any(), "1101").
		Return(&domain.Account{Code: "1101", Type: domain.TypeAsset}, nil)

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("tx-01")

	uc := usecase.NewTransactionUseCase(accountRepo, txRepo, idGen)

	tx, err := uc.PostTransaction(context.Background(), usecase.PostTransactionInput{
		Date:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Type:        domain.TxDebit,
		AccountCode: "1101",
		Amount:      decimal.NewFromInt(100),
		Description: "petty cash top-up",
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-01", tx.ID)
	assert.Equal(t, domain.TxDebit, tx.Type)
}

func TestPostTransaction_UnknownAccount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().GetByCode(gomock.Any(), "9999").
		Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewTransactionUseCase(accountRepo,
		mocks.NewMockTransactionRepository(ctrl), mocks.NewMockIDGenerator(ctrl))

	_, err := uc.PostTransaction(context.Background(), usecase.PostTransactionInput{
		Type:        domain.TxDebit,
		AccountCode: "9999",
		Amount:      decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, domain.ErrUnknownAccount)
}

func TestPostTransaction_NegativeAmount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	uc := usecase.NewTransactionUseCase(mocks.NewMockAccountRepository(ctrl),
		mocks.NewMockTransactionRepository(ctrl), mocks.NewMockIDGenerator(ctrl))

	_, err := uc.PostTransaction(context.Background(), usecase.PostTransactionInput{
		Type:        domain.TxCredit,
		AccountCode: "1101",
		Amount:      decimal.NewFromInt(-5),
	})
	require.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestPostTransaction_InvalidType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	uc := usecase.NewTransactionUseCase(mocks.NewMockAccountRepository(ctrl),
		mocks.NewMockTransactionRepository(ctrl), mocks.NewMockIDGenerator(ctrl))

	_, err := uc.PostTransaction(context.Background(), usecase.PostTransactionInput{
		Type:        "wire",
		AccountCode: "1101",
		Amount:      decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrInvalidTxType)
}
