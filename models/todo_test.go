package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "Valid date", value: "2025-05-27", wantErr: false},
		{name: "Wrong separator", value: "2025/05/27", wantErr: true},
		{name: "Missing zero padding", value: "2025-5-7", wantErr: true},
		{name: "Impossible calendar day", value: "2025-02-30", wantErr: true},
		{name: "Empty string", value: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.value, date.String())
		})
	}
}

func TestDateJSON(t *testing.T) {
	date, err := ParseDate("2025-05-27")
	assert.NoError(t, err)

	encoded, err := json.Marshal(date)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-05-27"`, string(encoded))

	var decoded Date
	assert.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, decoded.Equal(date.Time))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
}

func TestDateScan(t *testing.T) {
	var fromTime Date
	assert.NoError(t, fromTime.Scan(time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-05-27", fromTime.String())

	var fromString Date
	assert.NoError(t, fromString.Scan("2025-05-27"))
	assert.Equal(t, "2025-05-27", fromString.String())

	var fromBytes Date
	assert.NoError(t, fromBytes.Scan([]byte("2025-05-27")))
	assert.Equal(t, "2025-05-27", fromBytes.String())

	var invalid Date
	assert.Error(t, invalid.Scan(42))
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority(PriorityHigh))
	assert.True(t, ValidPriority(PriorityMedium))
	assert.True(t, ValidPriority(PriorityLow))
	assert.False(t, ValidPriority(0))
	assert.False(t, ValidPriority(4))
}

func TestValidSortOptions(t *testing.T) {
	assert.True(t, ValidSortBy(SortByDueDate))
	assert.True(t, ValidSortBy(SortByPriority))
	assert.True(t, ValidSortBy(SortByCreatedAt))
	assert.False(t, ValidSortBy("title"))

	assert.True(t, ValidSortOrder(SortOrderAsc))
	assert.True(t, ValidSortOrder(SortOrderDesc))
	assert.False(t, ValidSortOrder("descending"))
}
