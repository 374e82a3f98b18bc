package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostizzy/resiq/internal/calendar"
	"github.com/hostizzy/resiq/internal/ledger"
	mock_ledger "github.com/hostizzy/resiq/internal/ledger/mocks"
	"github.com/hostizzy/resiq/internal/models"
)

var march2025 = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_Settlements(t *testing.T) {
	ctx := context.Background()

	bookings := []models.Booking{
		{
			ID:               "B1",
			PropertyID:       "P1",
			CheckIn:          time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			Status:           models.BookingConfirmed,
			TotalAmount:      dec("10000"),
			CommissionAmount: dec("2000"),
		},
		{
			ID:               "B2",
			PropertyID:       "P1",
			CheckIn:          time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			Status:           models.BookingCancelled,
			TotalAmount:      dec("5000"),
			CommissionAmount: dec("1000"),
		},
	}
	payments := []models.Payment{
		{
			ID:          "PAY1",
			BookingID:   "B1",
			Amount:      dec("3000"),
			Recipient:   "Hostizzy account",
			Party:       models.PartyHostizzy,
			PaymentDate: time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
		},
	}
	statuses := []models.SettlementStatusEntry{
		{
			OwnerID:         "42",
			SettlementMonth: "2025-01",
			Status:          models.StatusCompleted,
			CompletedAt:     time.Date(2025, time.February, 2, 9, 0, 0, 0, time.UTC),
			SettlementType:  models.SettlementPaymentDone,
		},
	}

	tests := []struct {
		name       string
		descending bool
		wantFirst  calendar.YearMonth
	}{
		{name: "ascending", descending: false, wantFirst: calendar.YearMonth{Year: 2024, Month: time.November}},
		{name: "descending", descending: true, wantFirst: calendar.YearMonth{Year: 2025, Month: time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_ledger.NewMockRepository(ctrl)
			repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").Return([]string{"P1"}, nil)
			repo.EXPECT().ListBookingsForProperties(gomock.Any(), []string{"P1"}).Return(bookings, nil)
			repo.EXPECT().ListPaymentsForBookings(gomock.Any(), []string{"B1"}).Return(payments, nil)
			repo.EXPECT().ListSettlementStatuses(gomock.Any(), "42", "2024-11", "2025-03").Return(statuses, nil)

			l := ledger.New(repo, ledger.WithClock(fixedClock(march2025)))
			records, err := l.Settlements(ctx, "42", tt.descending)
			require.NoError(t, err)
			require.Len(t, records, 5)

			assert.Equal(t, tt.wantFirst.Year, records[0].Year)
			assert.Equal(t, int(tt.wantFirst.Month), records[0].Month)

			var jan models.SettlementRecord
			for _, r := range records {
				if r.Year == 2025 && r.Month == 1 {
					jan = r
				}
			}
			assert.True(t, jan.TotalCommission.Equal(dec("2000")), "commission = %s", jan.TotalCommission)
			assert.True(t, jan.PaymentsToHostizzy.Equal(dec("3000")), "hostizzy = %s", jan.PaymentsToHostizzy)
			assert.True(t, jan.NetSettlement.Equal(dec("1000")), "net = %s", jan.NetSettlement)
			assert.True(t, jan.IsCompleted)
			assert.Equal(t, models.SettlementPaymentDone, jan.SettlementType)
		})
	}
}

func TestLedger_SettlementsWithoutProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_ledger.NewMockRepository(ctrl)
	repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "7").Return([]string{}, nil)
	repo.EXPECT().ListPaymentsForBookings(gomock.Any(), gomock.Any()).Return([]models.Payment{}, nil)
	repo.EXPECT().ListSettlementStatuses(gomock.Any(), "7", "2024-11", "2025-03").Return(nil, nil)

	l := ledger.New(repo, ledger.WithClock(fixedClock(march2025)))
	records, err := l.Settlements(context.Background(), "7", false)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for _, r := range records {
		assert.True(t, r.NetSettlement.IsZero())
		assert.False(t, r.IsCompleted)
	}
}

func TestLedger_SettlementsBeforeAnchor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_ledger.NewMockRepository(ctrl)
	l := ledger.New(repo, ledger.WithClock(fixedClock(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))))

	records, err := l.Settlements(context.Background(), "42", false)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLedger_SettlementsSourceFailure(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(repo *mock_ledger.MockRepository)
	}{
		{
			name: "properties",
			setup: func(repo *mock_ledger.MockRepository) {
				repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").Return(nil, storeErr)
			},
		},
		{
			name: "bookings",
			setup: func(repo *mock_ledger.MockRepository) {
				repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").Return([]string{"P1"}, nil)
				repo.EXPECT().ListBookingsForProperties(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
		},
		{
			name: "payments",
			setup: func(repo *mock_ledger.MockRepository) {
				repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").Return([]string{"P1"}, nil)
				repo.EXPECT().ListBookingsForProperties(gomock.Any(), gomock.Any()).Return([]models.Booking{}, nil)
				repo.EXPECT().ListPaymentsForBookings(gomock.Any(), gomock.Any()).Return(nil, storeErr)
				repo.EXPECT().ListSettlementStatuses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
		},
		{
			name: "statuses",
			setup: func(repo *mock_ledger.MockRepository) {
				repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").Return([]string{"P1"}, nil)
				repo.EXPECT().ListBookingsForProperties(gomock.Any(), gomock.Any()).Return([]models.Booking{}, nil)
				repo.EXPECT().ListPaymentsForBookings(gomock.Any(), gomock.Any()).Return([]models.Payment{}, nil).AnyTimes()
				repo.EXPECT().ListSettlementStatuses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_ledger.NewMockRepository(ctrl)
			tt.setup(repo)

			l := ledger.New(repo, ledger.WithClock(fixedClock(march2025)))
			records, err := l.Settlements(context.Background(), "42", false)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, ledger.ErrSourceUnavailable)
			assert.ErrorIs(t, err, storeErr)
		})
	}
}

func TestLedger_SettlementsSourceTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_ledger.NewMockRepository(ctrl)
	repo.EXPECT().ListPropertyIDsByOwner(gomock.Any(), "42").DoAndReturn(
		func(ctx context.Context, ownerID string) ([]string, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	l := ledger.New(repo,
		ledger.WithClock(fixedClock(march2025)),
		ledger.WithSourceTimeout(20*time.Millisecond),
	)
	_, err := l.Settlements(context.Background(), "42", false)
	assert.ErrorIs(t, err, ledger.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLedger_SettlementsRequiresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := ledger.New(mock_ledger.NewMockRepository(ctrl))
	_, err := l.Settlements(context.Background(), "", false)
	assert.ErrorIs(t, err, ledger.ErrOwnerRequired)
}
