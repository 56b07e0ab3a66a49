// Package staydates infers a check-in/check-out interval from the partial and
// frequently conflicting date fields of legacy stay registries.
package staydates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Parse errors for cells that contain data but not a recognizable date. A cell
// that is empty or a placeholder is "missing", not an error, and the inference
// strategies cover it.
var (
	ErrCheckInParse  = errors.New("check-in date cell is not a recognizable date")
	ErrCheckOutParse = errors.New("check-out date cell is not a recognizable date")
)

// SentinelEpoch is the check-in assigned to rows with no usable date data at
// all; noon keeps day arithmetic clear of DST edges.
var SentinelEpoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// Input carries the raw fields relevant to date inference for one row.
type Input struct {
	RawDayCount   string
	RawCheckIn    string
	RawCheckOut   string
	RecordedTotal decimal.Decimal   // total recorded price, zero when unknown
	NightlyPrices []decimal.Decimal // active room-type prices for night estimation
}

// Options exposes the sanity thresholds. They are heuristics from the legacy
// importer, not business rules, so callers feed them from configuration.
type Options struct {
	MaxSpanDays        int // spans beyond this are treated as corrupted data
	MaxEstimatedNights int // cap for the price-derived night estimate
}

// DefaultOptions mirror the legacy thresholds.
func DefaultOptions() Options {
	return Options{MaxSpanDays: 365, MaxEstimatedNights: 30}
}

// Infer computes the stay period. Priority order:
//  1. day count and both dates: trust the dates unless the span exceeds
//     MaxSpanDays, in which case check-out is recomputed from the day count
//  2. day count and one date: derive the missing date by day arithmetic
//  3. day count only: sentinel check-in plus day count
//  4. no day count: both dates if available; with one date, estimate nights
//     from the recorded total and the nearest room-type price; with none, a
//     one-night sentinel stay
//
// The returned period always satisfies CheckOut > CheckIn.
func Infer(in Input, opts Options) (domain.StayPeriod, error) {
	if opts.MaxSpanDays <= 0 {
		opts.MaxSpanDays = 365
	}
	if opts.MaxEstimatedNights <= 0 {
		opts.MaxEstimatedNights = 30
	}

	checkIn, haveIn, err := parseCell(in.RawCheckIn)
	if err != nil {
		return domain.StayPeriod{}, fmt.Errorf("%w: %q", ErrCheckInParse, in.RawCheckIn)
	}
	checkOut, haveOut, err := parseCell(in.RawCheckOut)
	if err != nil {
		return domain.StayPeriod{}, fmt.Errorf("%w: %q", ErrCheckOutParse, in.RawCheckOut)
	}

	days, haveDays := parseDayCount(in.RawDayCount)

	var period domain.StayPeriod
	switch {
	case haveDays && haveIn && haveOut:
		period = domain.StayPeriod{CheckIn: checkIn, CheckOut: checkOut}
		if checkOut.Sub(checkIn) > time.Duration(opts.MaxSpanDays)*24*time.Hour {
			period.CheckOut = checkIn.AddDate(0, 0, days)
		}
	case haveDays && haveIn:
		period = domain.StayPeriod{CheckIn: checkIn, CheckOut: atNoon(checkIn).AddDate(0, 0, days)}
	case haveDays && haveOut:
		period = domain.StayPeriod{CheckIn: atNoon(checkOut).AddDate(0, 0, -days), CheckOut: checkOut}
	case haveDays:
		period = domain.StayPeriod{CheckIn: SentinelEpoch, CheckOut: SentinelEpoch.AddDate(0, 0, days)}
	case haveIn && haveOut:
		period = domain.StayPeriod{CheckIn: checkIn, CheckOut: checkOut}
	case haveIn:
		nights := estimateNights(in.RecordedTotal, in.NightlyPrices, opts.MaxEstimatedNights)
		period = domain.StayPeriod{CheckIn: checkIn, CheckOut: atNoon(checkIn).AddDate(0, 0, nights)}
	case haveOut:
		nights := estimateNights(in.RecordedTotal, in.NightlyPrices, opts.MaxEstimatedNights)
		period = domain.StayPeriod{CheckIn: atNoon(checkOut).AddDate(0, 0, -nights), CheckOut: checkOut}
	default:
		period = domain.StayPeriod{CheckIn: SentinelEpoch, CheckOut: SentinelEpoch.AddDate(0, 0, 1)}
	}

	if !period.CheckOut.After(period.CheckIn) {
		period.CheckOut = period.CheckIn.Add(24 * time.Hour)
	}
	return period, nil
}

// parseCell distinguishes a missing cell from an unparsable one.
func parseCell(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" || strings.EqualFold(raw, "n/a") {
		return time.Time{}, false, nil
	}
	t, err := ParseLegacyDate(raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

var legacyLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02/01/06",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// excelEpoch is day zero of the 1900 date system (with its leap-year quirk
// already folded in, which is why it is Dec 30 and not Dec 31).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseLegacyDate accepts the dd/mm/yyyy textual forms found in the registries
// as well as already-instantiated timestamp-like values that survive the
// spreadsheet reader as numeric serials, extracting the date and time-of-day
// components independently.
func ParseLegacyDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range legacyLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	if serial, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil && serial > 0 && serial < 2958466 {
		days := math.Floor(serial)
		frac := serial - days
		t := excelEpoch.AddDate(0, 0, int(days))
		return t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour)))), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", raw)
}

func parseDayCount(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// estimateNights divides the recorded total by the room-type price nearest to
// an integral night count, clamped to [1, maxNights].
func estimateNights(total decimal.Decimal, prices []decimal.Decimal, maxNights int) int {
	if total.LessThanOrEqual(decimal.Zero) || len(prices) == 0 {
		return 1
	}
	bestNights := 1
	bestResidual := decimal.Decimal{}
	haveBest := false
	for _, price := range prices {
		if price.LessThanOrEqual(decimal.Zero) {
			continue
		}
		nights := int(total.Div(price).Round(0).IntPart())
		if nights < 1 {
			nights = 1
		}
		if nights > maxNights {
			nights = maxNights
		}
		residual := total.Sub(price.Mul(decimal.NewFromInt(int64(nights)))).Abs()
		if !haveBest || residual.LessThan(bestResidual) {
			haveBest = true
			bestResidual = residual
			bestNights = nights
		}
	}
	return bestNights
}

func atNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}
