package database

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eccli/models"
)

func startTestDB(t *testing.T) {
	t.Helper()
	DB = nil
	Start(t.TempDir())
	require.True(t, Available())
	t.Cleanup(func() {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
		DB = nil
	})
}

func TestHelpersWithoutDatabase(t *testing.T) {
	DB = nil

	_, err := GetQuestKeys(2024, 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	err = StoreQuestKeys(&models.QuestKeys{Year: 2024, Day: 1, Key1: "k"})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = StoreSubmission(&models.Submission{Year: 2024, Day: 1, Part: 1})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = GetSubmissions(2024, 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = GetYearSubmissions(2024)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestQuestKeysRoundTrip(t *testing.T) {
	startTestDB(t)

	stored := &models.QuestKeys{
		Year:      2024,
		Day:       5,
		Key1:      "AAAAAAAAAAAAAAAAAAAA",
		FetchedAt: time.Now(),
	}
	require.NoError(t, StoreQuestKeys(stored))

	keys, err := GetQuestKeys(2024, 5)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAA", keys.Key1)
	assert.False(t, keys.Key2.Valid)
	assert.False(t, keys.Key3.Valid)
}

func TestQuestKeysMiss(t *testing.T) {
	startTestDB(t)

	_, err := GetQuestKeys(2024, 19)
	assert.Error(t, err)
}

func TestStoreQuestKeysReplacesOnUnlock(t *testing.T) {
	startTestDB(t)

	require.NoError(t, StoreQuestKeys(&models.QuestKeys{
		Year: 2024, Day: 3,
		Key1:      "AAAAAAAAAAAAAAAAAAAA",
		FetchedAt: time.Now(),
	}))
	require.NoError(t, StoreQuestKeys(&models.QuestKeys{
		Year: 2024, Day: 3,
		Key1:      "AAAAAAAAAAAAAAAAAAAA",
		Key2:      null.StringFrom("BBBBBBBBBBBBBBBBBBBB"),
		FetchedAt: time.Now(),
	}))

	keys, err := GetQuestKeys(2024, 3)
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBBBBBBBBBBBBBB", keys.Key2.String)

	var count int64
	require.NoError(t, DB.Model(&models.QuestKeys{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "unlock must update the existing row")
}

func TestSubmissionsPerQuest(t *testing.T) {
	startTestDB(t)

	base := time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)
	rows := []*models.Submission{
		{Year: 2024, Day: 1, Part: 1, Answer: "wrong", CreatedAt: base},
		{Year: 2024, Day: 1, Part: 1, Answer: "right", Correct: true, CreatedAt: base.Add(time.Minute)},
		{Year: 2024, Day: 2, Part: 1, Answer: "42", Correct: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, row := range rows {
		require.NoError(t, StoreSubmission(row))
	}

	day1, err := GetSubmissions(2024, 1)
	require.NoError(t, err)
	require.Len(t, day1, 2)
	assert.Equal(t, "wrong", day1[0].Answer)
	assert.Equal(t, "right", day1[1].Answer)

	year, err := GetYearSubmissions(2024)
	require.NoError(t, err)
	assert.Len(t, year, 3)
}
