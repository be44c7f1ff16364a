package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout канонический формат даты на проводе: DD-MM-YYYY
const dateLayout = "02-01-2006"

// ErrInvalidDateString возвращается при некорректной строке даты
var ErrInvalidDateString = errors.New("types: invalid date string, expected DD-MM-YYYY")

// DateString календарная дата в каноническом формате DD-MM-YYYY.
// Хранит только дату, без времени суток и таймзоны (полночь UTC).
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку в каноническом формате DD-MM-YYYY.
// Строка валидируется строго: "5-1-2024" и "2024-01-05" отклоняются.
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	// time.Parse допускает день/месяц без ведущего нуля
	if t.Format(dateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(s), nil
}

// Validate проверяет, что значение является корректной датой
func (d DateString) Validate() error {
	_, err := NewDateStringFromString(string(d))
	return err
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Time возвращает дату как time.Time (полночь UTC).
// Для некорректного значения возвращает нулевой time.Time.
func (d DateString) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before возвращает true, если d раньше other
func (d DateString) Before(other DateString) bool {
	return d.Time().Before(other.Time())
}

// After возвращает true, если d позже other
func (d DateString) After(other DateString) bool {
	return d.Time().After(other.Time())
}

// Equal возвращает true, если даты совпадают
func (d DateString) Equal(other DateString) bool {
	return d.Time().Equal(other.Time())
}

// AddDays возвращает дату, сдвинутую на days дней вперед
func (d DateString) AddDays(days int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, days))
}

// Weekday возвращает день недели
func (d DateString) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d DateString) String() string {
	return string(d)
}
