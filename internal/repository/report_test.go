package repository_test

import (
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommitTouchesLastContacted(t *testing.T) {
	db := openTestDB(t)
	officeRepo := repository.NewOfficeRepository(db)
	repo := repository.NewReportRepository(db)

	user := seedUser(t, db, "a@example.com")
	owner := seedOwner(t, db, user, "Alice Holdings")

	office := officeInput("Main Street")
	require.NoError(t, officeRepo.Create(ctxb(), office, owner.ID))

	contactedOn := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	report := &model.Report{
		Content:        "walked the property",
		Vibe:           8,
		CallType:       model.CallFOV,
		OfficeID:       &office.ID,
		PrimaryOwnerID: owner.ID,
		AuthorID:       user.ID,
		CreatedAt:      time.Date(2026, 3, 18, 14, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Commit(ctxb(), report, nil, contactedOn))

	var gotOwner model.Owner
	require.NoError(t, db.First(&gotOwner, "id = ?", owner.ID).Error)
	require.NotNil(t, gotOwner.LastContacted)
	assert.True(t, gotOwner.LastContacted.Equal(contactedOn))

	var gotOffice model.Office
	require.NoError(t, db.First(&gotOffice, "id = ?", office.ID).Error)
	require.NotNil(t, gotOffice.LastContacted)
	assert.True(t, gotOffice.LastContacted.Equal(contactedOn))
}

func TestReportCommitExcludesPrimaryFromAdditionalOwners(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewReportRepository(db)

	user := seedUser(t, db, "a@example.com")
	primary := seedOwner(t, db, user, "Primary")
	extra := seedOwner(t, db, user, "Extra")

	report := &model.Report{
		Content:        "joint call with both owners",
		Vibe:           6,
		CallType:       model.CallPhone,
		PrimaryOwnerID: primary.ID,
		AuthorID:       user.ID,
	}
	require.NoError(t, repo.Commit(ctxb(), report, []uuid.UUID{primary.ID, extra.ID}, time.Now().UTC()))

	got, err := repo.FindByID(ctxb(), report.ID)
	require.NoError(t, err)
	require.Len(t, got.AdditionalOwners, 1)
	assert.Equal(t, extra.ID, got.AdditionalOwners[0].ID)
}

func TestReportFindFiltersAndOrder(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewReportRepository(db)

	user := seedUser(t, db, "a@example.com")
	owner := seedOwner(t, db, user, "Alice Holdings")

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}
	for i, spec := range []struct {
		day      int
		callType model.CallType
	}{
		{1, model.CallPhone},
		{5, model.CallEmail},
		{10, model.CallFOV},
		{15, model.CallFOV},
	} {
		report := &model.Report{
			Content:        "call",
			Vibe:           4 + i,
			CallType:       spec.callType,
			PrimaryOwnerID: owner.ID,
			AuthorID:       user.ID,
			CreatedAt:      day(spec.day),
		}
		require.NoError(t, repo.Commit(ctxb(), report, nil, day(spec.day)))
	}

	t.Run("newest first with limit", func(t *testing.T) {
		got, err := repo.Find(ctxb(), repository.ReportFilter{OwnerIDs: []uuid.UUID{owner.ID}, Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
		assert.True(t, got[0].CreatedAt.Equal(day(15)))
	})

	t.Run("inclusive start and end bounds", func(t *testing.T) {
		start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
		count, err := repo.Count(ctxb(), repository.ReportFilter{
			OwnerIDs: []uuid.UUID{owner.ID},
			Start:    &start,
			End:      &end,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("exclusive before bound", func(t *testing.T) {
		before := day(10)
		count, err := repo.Count(ctxb(), repository.ReportFilter{
			OwnerIDs: []uuid.UUID{owner.ID},
			Before:   &before,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("call type filter", func(t *testing.T) {
		fov := model.CallFOV
		count, err := repo.Count(ctxb(), repository.ReportFilter{
			OwnerIDs: []uuid.UUID{owner.ID},
			CallType: &fov,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}

func TestReportCountByOwnerAndType(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewReportRepository(db)

	user := seedUser(t, db, "a@example.com")
	first := seedOwner(t, db, user, "First")
	second := seedOwner(t, db, user, "Second")

	now := time.Now().UTC()
	for _, spec := range []struct {
		owner    *model.Owner
		callType model.CallType
		n        int
	}{
		{first, model.CallPhone, 2},
		{first, model.CallEmail, 1},
		{second, model.CallFOV, 3},
	} {
		for i := 0; i < spec.n; i++ {
			report := &model.Report{
				Content:        "call",
				Vibe:           5,
				CallType:       spec.callType,
				PrimaryOwnerID: spec.owner.ID,
				AuthorID:       user.ID,
			}
			require.NoError(t, repo.Commit(ctxb(), report, nil, now))
		}
	}

	rows, err := repo.CountByOwnerAndType(ctxb(), repository.ReportFilter{AuthorID: &user.ID})
	require.NoError(t, err)

	counts := make(map[uuid.UUID]map[model.CallType]int64)
	for _, row := range rows {
		if counts[row.OwnerID] == nil {
			counts[row.OwnerID] = make(map[model.CallType]int64)
		}
		counts[row.OwnerID][row.CallType] = row.Count
	}
	assert.EqualValues(t, 2, counts[first.ID][model.CallPhone])
	assert.EqualValues(t, 1, counts[first.ID][model.CallEmail])
	assert.EqualValues(t, 3, counts[second.ID][model.CallFOV])
}

func TestReportAverageVibe(t *testing.T) {
	db := openTestDB(t)
	officeRepo := repository.NewOfficeRepository(db)
	repo := repository.NewReportRepository(db)

	user := seedUser(t, db, "a@example.com")
	owner := seedOwner(t, db, user, "Alice Holdings")

	office := officeInput("Main Street")
	require.NoError(t, officeRepo.Create(ctxb(), office, owner.ID))

	t.Run("no reports yields no average", func(t *testing.T) {
		avg, err := repo.AverageVibe(ctxb(), office.ID)
		require.NoError(t, err)
		assert.Nil(t, avg)
	})

	now := time.Now().UTC()
	for _, vibe := range []int{4, 8} {
		report := &model.Report{
			Content:        "call",
			Vibe:           vibe,
			CallType:       model.CallPhone,
			OfficeID:       &office.ID,
			PrimaryOwnerID: owner.ID,
			AuthorID:       user.ID,
		}
		require.NoError(t, repo.Commit(ctxb(), report, nil, now))
	}

	avg, err := repo.AverageVibe(ctxb(), office.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.0, *avg, 0.001)
}
