package entity

import "time"

// DateLayout formato de fecha calendario usado en filtros y respuestas.
const DateLayout = "2006-01-02"

// EventTime llave de orden de los movimientos: fecha de ocurrencia del evento real
// y el instante en que el sistema lo registró (desempate).
type EventTime struct {
	OccurredDate time.Time
	RecordedAt   time.Time
}

// NewEventTime normaliza ambos valores: la fecha se trunca a medianoche UTC y el instante
// se lleva a UTC sin lectura monotónica, de modo que dos EventTime iguales son == .
func NewEventTime(occurredDate, recordedAt time.Time) EventTime {
	return EventTime{
		OccurredDate: TruncateDate(occurredDate),
		RecordedAt:   recordedAt.UTC().Round(0),
	}
}

// Normalize devuelve la forma canónica (ver NewEventTime).
func (t EventTime) Normalize() EventTime {
	return NewEventTime(t.OccurredDate, t.RecordedAt)
}

// TruncateDate descarta la hora conservando el día calendario en la zona del valor recibido.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CompareEventTime orden ascendente: primero fecha de ocurrencia, luego instante de registro.
func CompareEventTime(a, b EventTime) int {
	if c := a.OccurredDate.Compare(b.OccurredDate); c != 0 {
		return c
	}
	return a.RecordedAt.Compare(b.RecordedAt)
}

// DescendingEventTime orden usado en la reconstrucción (más reciente primero).
func DescendingEventTime(a, b EventTime) int {
	return CompareEventTime(b, a)
}
