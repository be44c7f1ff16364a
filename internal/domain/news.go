package domain

import "time"

// NewsItem новость компании. Простая лента: чтение списка и публикация,
// без семантики бронирования.
type NewsItem struct {
	ID          int64
	Title       string
	Description string
	Time        time.Time
	Edited      *time.Time
}
