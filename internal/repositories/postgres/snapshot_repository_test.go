package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/menuengine/internal/models"
)

func TestTimeSlotAt(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	tests := []struct {
		utc  string
		want string
	}{
		{"2024-05-01T00:30:00Z", "breakfast"}, // 07:30 local
		{"2024-05-01T05:00:00Z", "lunch"},     // 12:00 local
		{"2024-05-01T08:00:00Z", "afternoon"}, // 15:00 local
		{"2024-05-01T12:59:00Z", "dinner"},    // 19:59 local
		{"2024-05-01T15:00:00Z", "late"},      // 22:00 local
		{"2024-05-01T20:00:00Z", "late"},      // 03:00 local
	}
	for _, tt := range tests {
		at, err := time.Parse(time.RFC3339, tt.utc)
		require.NoError(t, err)
		assert.Equal(t, tt.want, TimeSlotAt(at, jakarta).Name, tt.utc)
	}
}

func TestSummarizeCategories(t *testing.T) {
	categories := []models.Category{{ID: "mains"}, {ID: "empty"}}
	items := []models.MenuItem{
		{ID: "a", CategoryID: "mains", UnitsSold: 10, MarginPercent: 60},
		{ID: "orphan", CategoryID: "gone", UnitsSold: 99},
		{ID: "b", CategoryID: "mains", UnitsSold: 30, MarginPercent: 20},
	}

	got := summarizeCategories(categories, items)

	assert.Equal(t, []string{"a", "b"}, got[0].ItemIDs)
	assert.Equal(t, 20.0, got[0].AvgUnitsSold)
	assert.Equal(t, 40.0, got[0].AvgMargin)
	assert.Empty(t, got[1].ItemIDs)
	assert.Zero(t, got[1].AvgUnitsSold)
}

func TestAvgDailySalesPerItem(t *testing.T) {
	items := []models.MenuItem{{UnitsSold: 90}, {UnitsSold: 30}}

	assert.Equal(t, 2.0, avgDailySalesPerItem(items, 30))
	assert.Zero(t, avgDailySalesPerItem(nil, 30))
	assert.Zero(t, avgDailySalesPerItem(items, 0))
}
