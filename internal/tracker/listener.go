package tracker

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sixjars/backend/internal/eventbus"
	"github.com/sixjars/backend/internal/expense"
)

// Register subscribes the tracker to the expense lifecycle events on the
// bus. Handler errors are returned to the bus, which logs and drops them;
// the projection offers no redelivery.
func Register(bus *eventbus.Bus) {
	bus.Subscribe(expense.Created, func(e eventbus.Event) error {
		event, err := payload(e)
		if err != nil {
			return err
		}

		records, err := RecordCreated(event)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			log.Debug().Str("expense", event.ExpenseID.String()).Msg("expense created event skipped")
		}
		return nil
	})

	bus.Subscribe(expense.Updated, func(e eventbus.Event) error {
		event, err := payload(e)
		if err != nil {
			return err
		}

		records, err := RecordUpdated(event)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			log.Debug().Str("expense", event.ExpenseID.String()).Msg("expense updated event skipped")
		}
		return nil
	})

	bus.Subscribe(expense.Deleted, func(e eventbus.Event) error {
		event, err := payload(e)
		if err != nil {
			return err
		}

		return RecordDeleted(event)
	})
}

func payload(e eventbus.Event) (expense.Event, error) {
	event, ok := e.Data.(expense.Event)
	if !ok {
		return expense.Event{}, fmt.Errorf("unexpected payload %T for event %s", e.Data, e.Type)
	}

	return event, nil
}
