package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestClassifyExpiration(t *testing.T) {
	reference := date(2026, time.March, 15)

	tests := []struct {
		name       string
		expiration *time.Time
		want       ExpirationStatus
	}{
		{"nil expiration", nil, StatusUnknown},
		{"expired yesterday", datePtr(2026, time.March, 14), StatusExpired},
		{"expired long ago", datePtr(2024, time.January, 1), StatusExpired},
		{"expires today", datePtr(2026, time.March, 15), StatusUrgent},
		{"expires in 7 days", datePtr(2026, time.March, 22), StatusUrgent},
		{"expires in 8 days", datePtr(2026, time.March, 23), StatusSoon},
		{"expires in 30 days", datePtr(2026, time.April, 14), StatusSoon},
		{"expires in 31 days", datePtr(2026, time.April, 15), StatusGood},
		{"expires far in the future", datePtr(2030, time.January, 1), StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiration(tt.expiration, reference))
		})
	}
}

func TestClassifyExpirationIgnoresTimeOfDay(t *testing.T) {
	// Компонент времени не должен влиять на классификацию:
	// продукт, истекающий сегодня вечером, всё ещё urgent, а не expired.
	expiration := time.Date(2026, time.March, 15, 1, 0, 0, 0, time.UTC)
	reference := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, StatusUrgent, ClassifyExpiration(&expiration, reference))
	assert.Equal(t, 0, DaysUntil(expiration, reference))
}

func TestDaysUntil(t *testing.T) {
	reference := date(2026, time.March, 15)

	assert.Equal(t, -1, DaysUntil(date(2026, time.March, 14), reference))
	assert.Equal(t, 0, DaysUntil(date(2026, time.March, 15), reference))
	assert.Equal(t, 7, DaysUntil(date(2026, time.March, 22), reference))
	assert.Equal(t, 31, DaysUntil(date(2026, time.April, 15), reference))
}

func TestPriorityOrderingIsStrict(t *testing.T) {
	// AllStatuses перечислены по убыванию срочности,
	// приоритеты обязаны строго возрастать.
	for i := 1; i < len(AllStatuses); i++ {
		assert.Less(t, AllStatuses[i-1].Priority(), AllStatuses[i].Priority(),
			"%s must be more urgent than %s", AllStatuses[i-1], AllStatuses[i])
	}
}

func TestParseExpirationStatus(t *testing.T) {
	for _, s := range AllStatuses {
		parsed, ok := ParseExpirationStatus(string(s))
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseExpirationStatus("fresh")
	assert.False(t, ok)

	_, ok = ParseExpirationStatus("")
	assert.False(t, ok)
}

func TestProductStatus(t *testing.T) {
	reference := date(2026, time.March, 15)

	pr := Product{ExpirationDate: datePtr(2026, time.March, 20)}
	assert.Equal(t, StatusUrgent, pr.Status(reference))

	pr.ExpirationDate = nil
	assert.Equal(t, StatusUnknown, pr.Status(reference))
}

func TestParseCategoryType(t *testing.T) {
	ct, ok := ParseCategoryType("")
	require.True(t, ok)
	assert.Equal(t, CategoryOther, ct)

	ct, ok = ParseCategoryType("skincare")
	require.True(t, ok)
	assert.Equal(t, CategorySkincare, ct)

	_, ok = ParseCategoryType("food")
	assert.False(t, ok)
}

func TestParseOpenStatus(t *testing.T) {
	st, ok := ParseOpenStatus("")
	require.True(t, ok)
	assert.Equal(t, OpenUnopened, st)

	st, ok = ParseOpenStatus("opened")
	require.True(t, ok)
	assert.Equal(t, OpenOpened, st)

	_, ok = ParseOpenStatus("leaking")
	assert.False(t, ok)
}
