// Package tracker keeps the expense record projection consistent with the
// expense lifecycle events published by the expense module.
//
// The tracker is a pure downstream consumer: it never owns expenses and it
// never publishes events of its own. Handlers are idempotent, so replayed
// events do not duplicate rows, and events for untracked categories are
// accepted with zero rows affected.
package tracker

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sixjars/backend/internal/expense"
	"github.com/sixjars/backend/internal/models"
)

// RecordCreated creates one expense record per tracking row of the
// expense's category. An untracked category yields no records and no error.
func RecordCreated(event expense.Event) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		records, err = recordCreated(tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func recordCreated(tx *gorm.DB, event expense.Event) ([]models.ExpenseRecord, error) {
	var trackings []models.JarCategory
	err := tx.Where("category_id = ?", event.CategoryID).Find(&trackings).Error
	if err != nil {
		return nil, err
	}

	if len(trackings) == 0 {
		log.Debug().
			Str("expense", event.ExpenseID.String()).
			Str("category", event.CategoryID.String()).
			Msg("expense category is untracked, skipping")
		return nil, nil
	}

	for _, tracking := range trackings {
		record := models.ExpenseRecord{
			ExpenseID:     event.ExpenseID,
			JarCategoryID: tracking.ID,
			CategoryID:    event.CategoryID,
			Amount:        event.Amount,
			Currency:      event.Currency,
			PaymentType:   event.PaymentType,
			Date:          event.Date,
		}

		// A replayed event hits the (expense, tracking) unique index; the
		// conflict is treated as success.
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
		if err != nil {
			return nil, err
		}
	}

	// Read the rows back so that a replayed event returns the persisted
	// records, not the skipped inserts.
	records, err := recordsForExpense(tx, event.ExpenseID)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("expense", event.ExpenseID.String()).
		Int("records", len(records)).
		Msg("expense records created")

	return records, nil
}

// RecordUpdated reconciles the projection after an expense changed.
//
// With no existing records the expense was previously untracked and the
// event is handled like a creation. When the category is unchanged the
// financial fields are updated in place. When the category changed, all
// records are deleted and recreated against the new category's tracking
// set, which may be completely different.
func RecordUpdated(event expense.Event) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := recordsForExpense(tx, event.ExpenseID)
		if err != nil {
			return err
		}

		if len(existing) == 0 {
			records, err = recordCreated(tx, event)
			return err
		}

		if !existing[0].Matches(event.CategoryID) {
			log.Debug().
				Str("expense", event.ExpenseID.String()).
				Msg("expense category changed, rebuilding records")

			err = deleteRecords(tx, event.ExpenseID)
			if err != nil {
				return err
			}

			records, err = recordCreated(tx, event)
			return err
		}

		err = tx.Model(&models.ExpenseRecord{}).
			Where("expense_id = ?", event.ExpenseID).
			Updates(map[string]any{
				"amount":       event.Amount,
				"currency":     event.Currency,
				"payment_type": event.PaymentType,
				"date":         event.Date.In(time.UTC),
			}).Error
		if err != nil {
			return err
		}

		records, err = recordsForExpense(tx, event.ExpenseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// RecordDeleted removes all records of the expense. Deleting an expense
// that was never tracked is a no-op.
func RecordDeleted(event expense.Event) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		return deleteRecords(tx, event.ExpenseID)
	})
}

func recordsForExpense(tx *gorm.DB, expenseID uuid.UUID) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	err := tx.Where("expense_id = ?", expenseID).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func deleteRecords(tx *gorm.DB, expenseID uuid.UUID) error {
	// Hard delete: soft deleted rows would still occupy the
	// (expense, tracking) unique index and block recreation.
	return tx.Unscoped().
		Where("expense_id = ?", expenseID).
		Delete(&models.ExpenseRecord{}).Error
}
