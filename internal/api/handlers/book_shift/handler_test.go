package book_shift

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/middleware"
	bookShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/book_shift"
)

type fakeUseCase struct {
	resp *bookShift.Response
	err  error
	got  *bookShift.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookShift.Request) (*bookShift.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// newRequest собирает запрос с заголовками доверенного шлюза
func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/book-shift", strings.NewReader(body))
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Name", "Alice")
	return req
}

func serve(uc *fakeUseCase, req *http.Request) *httptest.ResponseRecorder {
	h := NewHandler(uc, nil, noopLogger{})
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &bookShift.Response{
		ID:        42,
		UserID:    7,
		UserName:  "Alice",
		Date:      "15-06-2024",
		ShiftType: "morning",
		CreatedAt: time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
	}}

	rec := serve(uc, newRequest(`{"shift_date":"15-06-2024","shift_type":"morning"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	// Идентификация берется из заголовков, не из тела
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.UserID)
	assert.Equal(t, "Alice", uc.got.UserName)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "15-06-2024", resp.ShiftDate)
	assert.Equal(t, "morning", resp.ShiftType)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "past date", err: bookShift.ErrPastDate, wantStatus: http.StatusBadRequest},
		{name: "closed day", err: bookShift.ErrClosedDay, wantStatus: http.StatusBadRequest},
		{name: "already booked", err: bookShift.ErrAlreadyBooked, wantStatus: http.StatusConflict},
		{name: "capacity exceeded", err: bookShift.ErrCapacityExceeded, wantStatus: http.StatusConflict},
		{name: "invalid input", err: bookShift.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "store unavailable", err: bookShift.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: bookShift.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}

			rec := serve(uc, newRequest(`{"shift_date":"15-06-2024","shift_type":"morning"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "malformed json", body: "{"},
		{name: "unknown field", body: `{"shift_date":"15-06-2024","shift_type":"morning","extra":1}`},
		{name: "iso date", body: `{"shift_date":"2024-06-15","shift_type":"morning"}`},
		{name: "unknown shift type", body: `{"shift_date":"15-06-2024","shift_type":"night"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := serve(uc, newRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_Unauthenticated(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no headers", headers: nil},
		{name: "missing user name", headers: map[string]string{"X-User-ID": "7"}},
		{name: "non-numeric user id", headers: map[string]string{"X-User-ID": "abc", "X-User-Name": "Alice"}},
		{name: "zero user id", headers: map[string]string{"X-User-ID": "0", "X-User-Name": "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bookings/book-shift",
				strings.NewReader(`{"shift_date":"15-06-2024","shift_type":"morning"}`))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := serve(&fakeUseCase{}, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
