package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxProductUnits caps how many units of one product a single allocation may
// claim; legacy front desks never sold more than a handful per stay.
const maxProductUnits = 5

// allocationInput carries everything the distribution algorithm needs. It is
// assembled outside the transaction so the algorithm itself stays pure (up to
// the random line-item timestamps).
type allocationInput struct {
	paymentID     string
	recordedTotal decimal.Decimal
	nightlyPrice  decimal.Decimal
	nights        int
	breakfast     *domain.HotelService // nil when the catalog has no breakfast service
	products      []domain.Product     // ascending unit cost
	receipt       domain.ReceiptType
	stay          domain.StayPeriod
}

// allocateLineItems distributes the recorded total across a room charge and
// secondary items. The room charge comes first; any excess buys breakfasts
// (at most one per night), then products in ascending cost order (at most
// maxProductUnits each); whatever is left too small to buy another unit is
// absorbed into the last item so the subtotals always sum to the recorded
// total. A receipt in the row adds a zero-cost document line for traceability.
func allocateLineItems(in allocationInput) []domain.PaymentLineItem {
	roomTotal := in.nightlyPrice.Mul(decimal.NewFromInt(int64(in.nights)))
	items := []domain.PaymentLineItem{{
		LineItemID:  uuid.NewString(),
		PaymentID:   in.paymentID,
		Kind:        domain.LineRoom,
		Description: fmt.Sprintf("Alojamiento %d noche(s)", in.nights),
		UnitPrice:   in.nightlyPrice,
		Quantity:    in.nights,
		Subtotal:    roomTotal,
		OccurredAt:  randomInstantWithin(in.stay),
	}}

	remainder := in.recordedTotal.Sub(roomTotal)

	if remainder.GreaterThan(decimal.Zero) && in.breakfast != nil && in.breakfast.Price.GreaterThan(decimal.Zero) {
		qty := int(remainder.Div(in.breakfast.Price).IntPart())
		if qty > in.nights {
			qty = in.nights
		}
		if qty > 0 {
			subtotal := in.breakfast.Price.Mul(decimal.NewFromInt(int64(qty)))
			items = append(items, domain.PaymentLineItem{
				LineItemID:  uuid.NewString(),
				PaymentID:   in.paymentID,
				Kind:        domain.LineService,
				Description: in.breakfast.Name,
				UnitPrice:   in.breakfast.Price,
				Quantity:    qty,
				Subtotal:    subtotal,
				RefID:       in.breakfast.ServiceID,
				OccurredAt:  randomInstantWithin(in.stay),
			})
			remainder = remainder.Sub(subtotal)
		}
	}

	for _, p := range in.products {
		if !remainder.GreaterThan(decimal.Zero) {
			break
		}
		if p.UnitCost.LessThanOrEqual(decimal.Zero) {
			continue
		}
		qty := int(remainder.Div(p.UnitCost).IntPart())
		if qty > maxProductUnits {
			qty = maxProductUnits
		}
		if qty <= 0 {
			continue
		}
		subtotal := p.UnitCost.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, domain.PaymentLineItem{
			LineItemID:  uuid.NewString(),
			PaymentID:   in.paymentID,
			Kind:        domain.LineProduct,
			Description: p.Name,
			UnitPrice:   p.UnitCost,
			Quantity:    qty,
			Subtotal:    subtotal,
			RefID:       p.ProductID,
			OccurredAt:  randomInstantWithin(in.stay),
		})
		remainder = remainder.Sub(subtotal)
	}

	// Whatever could not buy another unit lands on the last item, keeping the
	// invariant sum(subtotals) == recordedTotal. A negative remainder (recorded
	// total below the room charge) is absorbed the same way.
	if !remainder.IsZero() {
		last := &items[len(items)-1]
		last.Subtotal = last.Subtotal.Add(remainder)
		last.Description = fmt.Sprintf("%s (ajuste %s)", last.Description, remainder.StringFixed(2))
	}

	if in.receipt != domain.ReceiptNone {
		items = append(items, domain.PaymentLineItem{
			LineItemID:  uuid.NewString(),
			PaymentID:   in.paymentID,
			Kind:        domain.LineDocumentFee,
			Description: string(in.receipt),
			UnitPrice:   decimal.Zero,
			Quantity:    1,
			Subtotal:    decimal.Zero,
			OccurredAt:  randomInstantWithin(in.stay),
		})
	}

	return items
}

// randomInstantWithin picks a uniformly random instant inside the stay, used
// only to make line-item timestamps plausible; it never affects amounts.
func randomInstantWithin(p domain.StayPeriod) time.Time {
	span := p.CheckOut.Sub(p.CheckIn)
	if span <= 0 {
		return p.CheckIn
	}
	return p.CheckIn.Add(time.Duration(rand.Int63n(int64(span))))
}

var currencyMarks = strings.NewReplacer("S/.", "", "S/", "", "s/.", "", "s/", "", "$", "", " ", "", " ", "")

// parseRecordedTotal parses the locale-formatted total cell. Both "1.234,56"
// and "1,234.56" groupings appear in the books; a single separator followed by
// one or two digits is a decimal mark, anything else is thousands grouping.
func parseRecordedTotal(raw string) (decimal.Decimal, bool) {
	s := currencyMarks.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(s, ".") == 1 && len(s)-lastDot-1 <= 2 {
			// already decimal
		} else {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return d, true
}
