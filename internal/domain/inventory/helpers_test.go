package inventory_test

import (
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// at construye un EventTime con fecha y hora de registro ese mismo día.
func at(date string, hour int) entity.EventTime {
	d := day(date)
	return entity.NewEventTime(d, d.Add(time.Duration(hour)*time.Hour))
}

func receipt(code entity.ProductLotCode, t entity.EventTime, qty int64, source string) entity.ProductLotMovement {
	return entity.ProductLotMovement{
		Code:      code,
		EventTime: t,
		Detail:    entity.MovementDetail{MovementQuantity: qty, Source: ptr(source)},
	}
}

func issue(code entity.ProductLotCode, t entity.EventTime, qty int64, destination string) entity.ProductLotMovement {
	return entity.ProductLotMovement{
		Code:      code,
		EventTime: t,
		Detail:    entity.MovementDetail{MovementQuantity: qty, Destination: ptr(destination)},
	}
}

func adjustment(code entity.ProductLotCode, t entity.EventTime, qty int64, rt entity.ReasonType) entity.ProductLotMovement {
	return entity.ProductLotMovement{
		Code:      code,
		EventTime: t,
		Detail: entity.MovementDetail{
			AdjustmentQuantity:   ptr(qty),
			AdjustmentReason:     ptr("conteo"),
			AdjustmentReasonType: ptr(rt),
		},
	}
}

func snapshot(code entity.ProductLotCode, inventory int64, t entity.EventTime) entity.ProductLotStock {
	return entity.ProductLotStock{Code: code, Inventory: inventory, EventTime: t}
}
