package services

import (
	"testing"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStay() domain.StayPeriod {
	return domain.StayPeriod{
		CheckIn:  time.Date(2014, time.March, 15, 12, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2014, time.March, 17, 12, 0, 0, 0, time.UTC),
	}
}

func testBreakfast() *domain.HotelService {
	return &domain.HotelService{ServiceID: "svc-desayuno", Name: "Desayuno", Price: decimal.NewFromInt(15)}
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "prod-agua", Name: "Agua mineral", UnitCost: decimal.RequireFromString("2.50")},
		{ProductID: "prod-gaseosa", Name: "Gaseosa", UnitCost: decimal.NewFromInt(5)},
	}
}

func sumSubtotals(items []domain.PaymentLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

func TestAllocateLineItemsRoomOnly(t *testing.T) {
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(160),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		stay:          testStay(),
	})

	require.Len(t, items, 1)
	assert.Equal(t, domain.LineRoom, items[0].Kind)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(160)))
}

func TestAllocateLineItemsExcessBuysBreakfastsThenProducts(t *testing.T) {
	// 190 = 2 nights at 80 + 2 breakfasts at 15.
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(190),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		breakfast:     testBreakfast(),
		products:      testProducts(),
		stay:          testStay(),
	})

	require.Len(t, items, 2)
	assert.Equal(t, domain.LineService, items[1].Kind)
	assert.Equal(t, 2, items[1].Quantity)
	assert.True(t, sumSubtotals(items).Equal(decimal.NewFromInt(190)))
}

func TestAllocateLineItemsBreakfastCappedAtOnePerNight(t *testing.T) {
	// 100 over 1 night at 50: one breakfast (15), then products soak up 35.
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(100),
		nightlyPrice:  decimal.NewFromInt(50),
		nights:        1,
		breakfast:     testBreakfast(),
		products:      testProducts(),
		stay:          testStay(),
	})

	require.GreaterOrEqual(t, len(items), 3)
	assert.Equal(t, domain.LineService, items[1].Kind)
	assert.Equal(t, 1, items[1].Quantity)
	for _, it := range items[2:] {
		assert.Equal(t, domain.LineProduct, it.Kind)
		assert.LessOrEqual(t, it.Quantity, maxProductUnits)
	}
	assert.True(t, sumSubtotals(items).Equal(decimal.NewFromInt(100)))
}

func TestAllocateLineItemsRemainderAbsorbedIntoLastItem(t *testing.T) {
	// 171.30 leaves 1.30 that cannot buy another unit of anything.
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.RequireFromString("171.30"),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		breakfast:     testBreakfast(),
		products:      testProducts(),
		stay:          testStay(),
	})

	assert.True(t, sumSubtotals(items).Equal(decimal.RequireFromString("171.30")))
	last := items[len(items)-1]
	assert.Contains(t, last.Description, "ajuste")
}

func TestAllocateLineItemsNegativeRemainder(t *testing.T) {
	// Recorded total below the room charge still reconciles.
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(120),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		breakfast:     testBreakfast(),
		products:      testProducts(),
		stay:          testStay(),
	})

	require.Len(t, items, 1)
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(120)))
	assert.Contains(t, items[0].Description, "ajuste")
}

func TestAllocateLineItemsReceiptAddsZeroCostDocumentLine(t *testing.T) {
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(160),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		receipt:       domain.ReceiptBoleta,
		stay:          testStay(),
	})

	require.Len(t, items, 2)
	last := items[len(items)-1]
	assert.Equal(t, domain.LineDocumentFee, last.Kind)
	assert.True(t, last.Subtotal.IsZero())
	assert.True(t, sumSubtotals(items).Equal(decimal.NewFromInt(160)))
}

func TestAllocateLineItemsTimestampsInsideStay(t *testing.T) {
	stay := testStay()
	items := allocateLineItems(allocationInput{
		paymentID:     "pay-1",
		recordedTotal: decimal.NewFromInt(190),
		nightlyPrice:  decimal.NewFromInt(80),
		nights:        2,
		breakfast:     testBreakfast(),
		stay:          stay,
	})

	for _, it := range items {
		assert.False(t, it.OccurredAt.Before(stay.CheckIn))
		assert.False(t, it.OccurredAt.After(stay.CheckOut))
	}
}

func TestParseRecordedTotal(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"80", "80", true},
		{"S/ 85.50", "85.5", true},
		{"S/. 120", "120", true},
		{"$45", "45", true},
		{"1.234,56", "1234.56", true},
		{"1,234.56", "1234.56", true},
		{"1.234", "1234", true},
		{"1,5", "1.5", true},
		{"12.345.678", "12345678", true},
		{"", "0", false},
		{"-", "0", false},
		{"gratis", "0", false},
		{"0", "0", false},
		{"-50", "0", false},
	}
	for _, tc := range cases {
		got, ok := parseRecordedTotal(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "raw=%q got=%s", tc.raw, got)
	}
}
