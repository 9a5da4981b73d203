package domain

import "time"

// ExpirationStatus — статус годности продукта, вычисляемый из даты истечения срока.
// Никогда не хранится в БД: всегда пересчитывается от опорной даты,
// чтобы значение не могло разойтись с датой истечения.
type ExpirationStatus string

const (
	StatusExpired ExpirationStatus = "expired" // срок уже истёк
	StatusUrgent  ExpirationStatus = "urgent"  // истекает в ближайшие 7 дней
	StatusSoon    ExpirationStatus = "soon"    // истекает в ближайшие 8–30 дней
	StatusGood    ExpirationStatus = "good"    // до истечения больше 30 дней
	StatusUnknown ExpirationStatus = "unknown" // дата истечения не задана
)

const (
	urgentWindowDays = 7
	soonWindowDays   = 30
)

// AllStatuses перечисляет статусы в порядке убывания срочности.
var AllStatuses = []ExpirationStatus{
	StatusExpired,
	StatusUrgent,
	StatusSoon,
	StatusGood,
	StatusUnknown,
}

// ClassifyExpiration определяет статус продукта по дате истечения срока
// и опорной дате. Опорная дата всегда передаётся снаружи — внутри нет
// обращения к текущему времени, функция чистая и детерминированная.
// Продукт, истекающий сегодня, считается urgent (0 дней до истечения).
func ClassifyExpiration(expiration *time.Time, reference time.Time) ExpirationStatus {
	if expiration == nil {
		return StatusUnknown
	}

	days := DaysUntil(*expiration, reference)
	switch {
	case days < 0:
		return StatusExpired
	case days <= urgentWindowDays:
		return StatusUrgent
	case days <= soonWindowDays:
		return StatusSoon
	default:
		return StatusGood
	}
}

// DaysUntil возвращает число полных календарных дней от reference до target.
// Обе даты усекаются до суток, компонент времени не влияет на результат.
func DaysUntil(target, reference time.Time) int {
	return int(truncateToDay(target).Sub(truncateToDay(reference)).Hours() / 24)
}

// Priority возвращает приоритет статуса для сортировки:
// чем меньше значение, тем срочнее.
func (s ExpirationStatus) Priority() int {
	switch s {
	case StatusExpired:
		return 1
	case StatusUrgent:
		return 2
	case StatusSoon:
		return 3
	case StatusGood:
		return 4
	default:
		return 5
	}
}

// ParseExpirationStatus разбирает строковое значение статуса из запроса.
// Неизвестные значения не являются ошибкой: фильтр просто не применяется.
func ParseExpirationStatus(s string) (ExpirationStatus, bool) {
	switch ExpirationStatus(s) {
	case StatusExpired, StatusUrgent, StatusSoon, StatusGood, StatusUnknown:
		return ExpirationStatus(s), true
	default:
		return "", false
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
