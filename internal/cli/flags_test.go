package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/domain"
)

func TestParseWeekFlags(t *testing.T) {
	week, err := parseWeekFlags([]string{"Monday=8", "friday=6.5"})
	require.NoError(t, err)
	assert.Equal(t, 8.0, week[time.Monday])
	assert.Equal(t, 6.5, week[time.Friday])
}

func TestParseWeekFlags_Invalid(t *testing.T) {
	_, err := parseWeekFlags([]string{"Monday"})
	assert.Error(t, err)

	_, err = parseWeekFlags([]string{"Noday=8"})
	assert.Error(t, err)

	_, err = parseWeekFlags([]string{"Monday=25"})
	assert.Error(t, err)
}

func TestAssignmentsFlag(t *testing.T) {
	var f assignmentsFlag
	require.NoError(t, f.Set("AI Engineer=100"))
	require.NoError(t, f.Set("Tech Lead=25"))

	assert.Equal(t, []domain.Assignment{
		{Role: "AI Engineer", AllocationPct: 100},
		{Role: "Tech Lead", AllocationPct: 25},
	}, f.assignments)
	assert.Equal(t, "AI Engineer=100,Tech Lead=25", f.String())
}

func TestAssignmentsFlag_Invalid(t *testing.T) {
	var f assignmentsFlag
	assert.Error(t, f.Set("AI Engineer"))
	assert.Error(t, f.Set("=50"))
	assert.Error(t, f.Set("AI Engineer=150"))
}

func TestParseIntList(t *testing.T) {
	ids, err := parseIntList("1, 2,100")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 100}, ids)

	ids, err = parseIntList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseIntList("1,x")
	assert.Error(t, err)
}
