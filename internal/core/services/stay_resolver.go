package services

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/hostalqori/hotel_management_app/internal/utils/normalize"
	"github.com/shopspring/decimal"
)

// Batch-fatal resolution errors: without rooms or receptionists no row can be
// imported at all, so these abort before processing starts.
var (
	ErrNoActiveRooms   = errors.New("no active rooms exist")
	ErrNoReceptionists = errors.New("no active receptionist accounts exist")
)

// roomPick is a resolved room together with its type's nightly price, which the
// allocation step needs.
type roomPick struct {
	room         domain.Room
	nightlyPrice decimal.Decimal
}

// pickRoom resolves the best-fit room for a legacy row. The cascade, first
// match wins: exact door-number match, type-label substring match, the type
// whose nightly price is closest to total/nights, and finally any active room
// at random. The catalogs are preloaded once per batch, so this stays pure.
func pickRoom(rooms []domain.Room, types []domain.RoomType, rawNumber, rawType string, recordedTotal decimal.Decimal, nights int) (roomPick, error) {
	if len(rooms) == 0 {
		return roomPick{}, ErrNoActiveRooms
	}
	typeByID := make(map[string]domain.RoomType, len(types))
	for _, t := range types {
		typeByID[t.RoomTypeID] = t
	}
	withPrice := func(r domain.Room) roomPick {
		return roomPick{room: r, nightlyPrice: typeByID[r.RoomTypeID].NightlyPrice}
	}

	if number := strings.TrimSpace(rawNumber); number != "" {
		for _, r := range rooms {
			if strings.EqualFold(r.Number, number) {
				return withPrice(r), nil
			}
		}
	}

	if label := strings.ToLower(strings.TrimSpace(rawType)); label != "" {
		for _, t := range types {
			if !strings.Contains(strings.ToLower(t.Name), label) {
				continue
			}
			for _, r := range rooms {
				if r.RoomTypeID == t.RoomTypeID {
					return withPrice(r), nil
				}
			}
		}
	}

	if recordedTotal.GreaterThan(decimal.Zero) && nights > 0 {
		target := recordedTotal.Div(decimal.NewFromInt(int64(nights)))
		var best *domain.Room
		var bestDiff decimal.Decimal
		for _, t := range types {
			diff := t.NightlyPrice.Sub(target).Abs()
			for i, r := range rooms {
				if r.RoomTypeID != t.RoomTypeID {
					continue
				}
				if best == nil || diff.LessThan(bestDiff) {
					best = &rooms[i]
					bestDiff = diff
				}
				break
			}
		}
		if best != nil {
			return withPrice(*best), nil
		}
	}

	return withPrice(rooms[rand.Intn(len(rooms))]), nil
}

// pickReceptionist resolves the staff account a row names, falling back to a
// random active receptionist when the name matches nobody.
func pickReceptionist(receptionists []domain.StaffUser, rawName string) (domain.StaffUser, error) {
	if len(receptionists) == 0 {
		return domain.StaffUser{}, ErrNoReceptionists
	}
	if folded := normalize.FoldName(rawName); folded != "" {
		for _, u := range receptionists {
			if strings.Contains(normalize.FoldName(u.Name), folded) {
				return u, nil
			}
		}
	}
	return receptionists[rand.Intn(len(receptionists))], nil
}
