package closeddays

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gooffice/GoOffice-ShiftService/internal/closedperiods"
	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
)

type fakeRepo struct {
	periods   []domain.ClosedPeriod
	listErr   error
	insertErr error
	nextID    int64
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]domain.ClosedPeriod, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.periods, nil
}

func (f *fakeRepo) Insert(ctx context.Context, p domain.ClosedPeriod) (domain.ClosedPeriod, error) {
	if f.insertErr != nil {
		return domain.ClosedPeriod{}, f.insertErr
	}
	f.nextID++
	p.ID = f.nextID
	f.periods = append(f.periods, p)
	return p, nil
}

type fakeNotifier struct {
	published []notifier.EventKind
}

func (f *fakeNotifier) Publish(kind notifier.EventKind) {
	f.published = append(f.published, kind)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Load(t *testing.T) {
	repo := &fakeRepo{periods: []domain.ClosedPeriod{
		{ID: 1, Start: "24-12-2024", End: "26-12-2024", Reason: "праздники"},
	}}
	registry := closedperiods.NewRegistry()
	svc := NewService(repo, registry, &fakeNotifier{}, noopLogger{})

	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, registry.IsClosed("25-12-2024"))
	assert.False(t, registry.IsClosed("27-12-2024"))
}

func TestService_Load_RepoFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, closedperiods.NewRegistry(), &fakeNotifier{}, noopLogger{})

	assert.ErrorIs(t, svc.Load(context.Background()), ErrInternal)
}

func TestService_Add(t *testing.T) {
	repo := &fakeRepo{}
	registry := closedperiods.NewRegistry()
	n := &fakeNotifier{}
	svc := NewService(repo, registry, n, noopLogger{})

	created, err := svc.Add(context.Background(), &AddPeriodRequest{
		Start:  "24-12-2024",
		End:    "26-12-2024",
		Reason: "праздники",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// Реестр перечитан и сигнал разослан
	assert.True(t, registry.IsClosed("24-12-2024"))
	assert.Equal(t, []notifier.EventKind{notifier.KindClosedPeriodsChanged}, n.published)
}

func TestService_Add_InvalidPeriod(t *testing.T) {
	tests := []struct {
		name string
		req  *AddPeriodRequest
	}{
		{name: "end before start", req: &AddPeriodRequest{Start: "26-12-2024", End: "24-12-2024"}},
		{name: "malformed start", req: &AddPeriodRequest{Start: "2024-12-24", End: "26-12-2024"}},
		{name: "empty dates", req: &AddPeriodRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &fakeNotifier{}
			svc := NewService(&fakeRepo{}, closedperiods.NewRegistry(), n, noopLogger{})

			_, err := svc.Add(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidPeriod)
			assert.Empty(t, n.published)
		})
	}
}

func TestService_Add_RepoFailure(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("connection refused")}
	n := &fakeNotifier{}
	svc := NewService(repo, closedperiods.NewRegistry(), n, noopLogger{})

	_, err := svc.Add(context.Background(), &AddPeriodRequest{
		Start: "24-12-2024",
		End:   "26-12-2024",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, n.published)
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{periods: []domain.ClosedPeriod{
		{ID: 1, Start: "31-12-2024", End: "31-12-2024"},
		{ID: 2, Start: "24-12-2024", End: "26-12-2024"},
	}}
	registry := closedperiods.NewRegistry()
	svc := NewService(repo, registry, &fakeNotifier{}, noopLogger{})
	require.NoError(t, svc.Load(context.Background()))

	periods, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, int64(2), periods[0].ID)
	assert.Equal(t, int64(1), periods[1].ID)
}
