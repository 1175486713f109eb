package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "16h", FormatHours(16))
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "2d", FormatDays(2))
	assert.Equal(t, "1.5d", FormatDays(1.5))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "480", FormatMoney(480))
	assert.Equal(t, "12,480", FormatMoney(12480))
	assert.Equal(t, "1,234,567", FormatMoney(1234567))
	assert.Equal(t, "99.50", FormatMoney(99.5))
}

func TestFormatDate(t *testing.T) {
	assert.Contains(t, FormatDate(nil), "—")

	d := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-02", FormatDate(&d))
}

func TestTruncName(t *testing.T) {
	assert.Equal(t, "abc  ", TruncName("abc", 5))
	assert.Equal(t, "abcd…", TruncName("abcdefgh", 5))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{{"1", "Research"}, {"100", "Kick-off"}},
	)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Research")
	assert.Contains(t, out, "Kick-off")
	assert.Contains(t, out, "─")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
