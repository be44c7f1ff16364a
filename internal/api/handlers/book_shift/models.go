package book_shift

import (
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	bookShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/book_shift"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// BookShiftRequest HTTP request model
type BookShiftRequest struct {
	ShiftDate string `json:"shift_date"` // "15-10-2025"
	ShiftType string `json:"shift_type"` // "morning" | "afternoon"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	ShiftDate string `json:"shift_date"`
	ShiftType string `json:"shift_type"`
	CreatedAt string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookShiftRequest) ToUseCaseRequest(userID int64, userName string) (*bookShift.Request, error) {
	date, err := types.NewDateStringFromString(r.ShiftDate)
	if err != nil {
		return nil, err
	}

	shiftType := domain.ShiftType(r.ShiftType)
	if err := shiftType.Validate(); err != nil {
		return nil, err
	}

	return &bookShift.Request{
		UserID:    userID,
		UserName:  userName,
		Date:      date,
		ShiftType: shiftType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookShift.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		UserName:  resp.UserName,
		ShiftDate: resp.Date.String(),
		ShiftType: string(resp.ShiftType),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
