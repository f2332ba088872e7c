package ledger

import (
	"errors"
	"fmt"
	"time"

	"kebab-inventory-backend/internal/catalog"
	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/models"

	"gorm.io/gorm/clause"
)

// DateLayout is the wire and storage format for ledger days.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted YYYY-MM-DD")

// ErrNegativeCounter rejects a single entry; the rest of its batch proceeds.
var ErrNegativeCounter = errors.New("counters must be zero or positive")

// DayEntry is one product's counters for one day. Final is derived on read
// and never stored, so it cannot drift from its inputs.
type DayEntry struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Initial     int    `json:"initial"`
	Production  int    `json:"production"`
	Shipment    int    `json:"shipment"`
	Returns     int    `json:"returns"`
	Final       int    `json:"final"`
}

// DailyView holds one day's entries, exactly one per catalog product in
// catalog order, zero-filled for products without a saved row.
type DailyView struct {
	Date    string     `json:"date"`
	Entries []DayEntry `json:"entries"`
}

// EntryInput is one tuple of a SaveDay batch. Counters left out of the
// request body decode as zero; partial daily entry is the normal case.
type EntryInput struct {
	ProductID  uint `json:"product_id"`
	Initial    int  `json:"initial"`
	Production int  `json:"production"`
	Shipment   int  `json:"shipment"`
	Returns    int  `json:"returns"`
}

// EntryError reports a single failed tuple with enough context to retry
// exactly that tuple.
type EntryError struct {
	ProductID uint
	Date      string
	Err       error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("product %d on %s: %v", e.ProductID, e.Date, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Final derives the end-of-day balance from the four counters.
func Final(initial, production, shipment, returns int) int {
	return initial + production - shipment + returns
}

// GetDay returns the DailyView for date: every catalog product exactly once,
// joined against that day's rows. Filtering on the date key keeps the read
// proportional to the catalog size no matter how much history the table holds.
func GetDay(date string) (DailyView, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DailyView{}, ErrInvalidDate
	}

	products, err := catalog.ListProducts()
	if err != nil {
		return DailyView{}, err
	}

	var rows []models.InventoryEntry
	if err := database.DB.Where("date = ?", date).Find(&rows).Error; err != nil {
		return DailyView{}, fmt.Errorf("inventory for %s could not be read: %w", date, err)
	}

	byProduct := make(map[uint]models.InventoryEntry, len(rows))
	for _, r := range rows {
		byProduct[r.ProductID] = r
	}

	view := DailyView{Date: date, Entries: make([]DayEntry, 0, len(products))}
	for _, p := range products {
		r := byProduct[p.ID] // zero value keeps all counters at 0
		view.Entries = append(view.Entries, DayEntry{
			ProductID:   p.ID,
			ProductName: p.Name,
			Initial:     r.Initial,
			Production:  r.Production,
			Shipment:    r.Shipment,
			Returns:     r.Returns,
			Final:       Final(r.Initial, r.Production, r.Shipment, r.Returns),
		})
	}
	return view, nil
}

// SaveDay upserts each entry against the (product_id, date) unique key. The
// batch is not atomic: a failed entry is recorded and the remaining entries
// still commit, so callers can retry just the failed tuples.
func SaveDay(date string, entries []EntryInput) (int, []*EntryError, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return 0, nil, ErrInvalidDate
	}

	saved := 0
	var failed []*EntryError
	for _, in := range entries {
		if err := upsertEntry(date, in); err != nil {
			failed = append(failed, &EntryError{ProductID: in.ProductID, Date: date, Err: err})
			continue
		}
		saved++
	}
	return saved, failed, nil
}

func upsertEntry(date string, in EntryInput) error {
	if in.ProductID == 0 {
		return errors.New("product_id is required")
	}
	if in.Initial < 0 || in.Production < 0 || in.Shipment < 0 || in.Returns < 0 {
		return ErrNegativeCounter
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", in.ProductID).Error; err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	row := models.InventoryEntry{
		ProductID:  in.ProductID,
		Date:       date,
		Initial:    in.Initial,
		Production: in.Production,
		Shipment:   in.Shipment,
		Returns:    in.Returns,
	}

	// Replace all four counters when the (product_id, date) key already exists.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"initial", "production", "shipment", "returns", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("entry could not be written: %w", err)
	}
	return nil
}
