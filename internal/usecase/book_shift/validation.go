package book_shift

import (
	"fmt"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.UserName == "" || len(req.UserName) > domain.MaxUserNameLen {
		return fmt.Errorf("%w: invalid user name", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if err := req.ShiftType.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// isDateInPast проверяет, что дата строго раньше сегодняшней.
// Сравниваются только даты, время суток игнорируется.
func isDateInPast(date types.DateString, now time.Time) bool {
	today := types.NewDateString(now)
	return date.Before(today)
}
