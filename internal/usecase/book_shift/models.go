package book_shift

import (
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Request модель запроса на бронирование смены
type Request struct {
	UserID    int64            // ID аутентифицированного пользователя
	UserName  string           // Отображаемое имя пользователя
	Date      types.DateString // Дата смены
	ShiftType domain.ShiftType // Тип смены (morning/afternoon)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	UserName  string
	Date      types.DateString
	ShiftType domain.ShiftType
	CreatedAt time.Time
}
