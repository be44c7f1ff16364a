package closedperiods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

func TestRegistry_IsClosed(t *testing.T) {
	r := NewRegistry()
	r.Replace([]domain.ClosedPeriod{
		{ID: 1, Start: "24-12-2024", End: "26-12-2024", Reason: "праздники"},
		{ID: 2, Start: "31-12-2024", End: "31-12-2024", Reason: "инвентаризация"},
	})

	tests := []struct {
		name string
		date types.DateString
		want bool
	}{
		{name: "start boundary inclusive", date: "24-12-2024", want: true},
		{name: "inside period", date: "25-12-2024", want: true},
		{name: "end boundary inclusive", date: "26-12-2024", want: true},
		{name: "day before period", date: "23-12-2024", want: false},
		{name: "day after period", date: "27-12-2024", want: false},
		{name: "single day period", date: "31-12-2024", want: true},
		{name: "open day", date: "30-12-2024", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsClosed(tt.date))
		})
	}
}

func TestRegistry_OverlappingPeriods(t *testing.T) {
	r := NewRegistry()
	r.Replace([]domain.ClosedPeriod{
		{ID: 1, Start: "10-06-2024", End: "14-06-2024"},
		{ID: 2, Start: "12-06-2024", End: "18-06-2024"},
	})

	// Дата закрыта, если попадает хотя бы в один период
	assert.True(t, r.IsClosed("11-06-2024"))
	assert.True(t, r.IsClosed("13-06-2024"))
	assert.True(t, r.IsClosed("17-06-2024"))
	assert.False(t, r.IsClosed("19-06-2024"))
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()
	r.Replace([]domain.ClosedPeriod{
		{ID: 1, Start: "24-12-2024", End: "26-12-2024"},
	})
	require.True(t, r.IsClosed("25-12-2024"))

	// Replace целиком заменяет содержимое, а не дополняет его
	r.Replace([]domain.ClosedPeriod{
		{ID: 2, Start: "01-01-2025", End: "02-01-2025"},
	})
	assert.False(t, r.IsClosed("25-12-2024"))
	assert.True(t, r.IsClosed("01-01-2025"))
}

func TestRegistry_PeriodsSortedByStart(t *testing.T) {
	r := NewRegistry()
	r.Replace([]domain.ClosedPeriod{
		{ID: 1, Start: "31-12-2024", End: "31-12-2024"},
		{ID: 2, Start: "24-12-2024", End: "26-12-2024"},
		{ID: 3, Start: "28-12-2024", End: "29-12-2024"},
	})

	periods := r.Periods()

	require.Len(t, periods, 3)
	assert.Equal(t, types.DateString("24-12-2024"), periods[0].Start)
	assert.Equal(t, types.DateString("28-12-2024"), periods[1].Start)
	assert.Equal(t, types.DateString("31-12-2024"), periods[2].Start)
}

func TestRegistry_PeriodsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Replace([]domain.ClosedPeriod{
		{ID: 1, Start: "24-12-2024", End: "26-12-2024"},
	})

	periods := r.Periods()
	periods[0].Start = "01-01-2000"

	assert.Equal(t, types.DateString("24-12-2024"), r.Periods()[0].Start)
}

func TestRegistry_EmptyRegistry(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.IsClosed("25-12-2024"))
	assert.Empty(t, r.Periods())
}
