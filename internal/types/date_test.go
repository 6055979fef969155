package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 9}, d)
	assert.Equal(t, "2026-03-09", d.String())

	for _, bad := range []string{"", "2026-02-30", "09/03/2026", "2026-3-9", "2026-03-09T10:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2026, Month: time.January, Day: 31}
	b := Date{Year: 2026, Month: time.February, Day: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	instant := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-05-01", DateOf(instant).String())
	assert.Equal(t, "2026-05-02", DateOf(instant.In(loc)).String())
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-12-24"}`), &payload))
	assert.Equal(t, "2026-12-24", payload.Date.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-12-24"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &payload))
}
