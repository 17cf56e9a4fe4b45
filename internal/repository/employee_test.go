// internal/repository/employee_test.go
package repository_test

import (
	"testing"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeDeleteCascadesReports(t *testing.T) {
	db := openTestDB(t)
	offices := repository.NewOfficeRepository(db)
	repo := repository.NewEmployeeRepository(db)

	user := seedUser(t, db, "a@example.com")
	owner := seedOwner(t, db, user, "Alice Holdings")
	extra := seedOwner(t, db, user, "Alice Partners")

	office := officeInput("Main Street")
	require.NoError(t, offices.Create(ctxb(), office, owner.ID))

	doomed := &model.Employee{OfficeID: office.ID, Name: "Eve", Position: "Manager", Potential: 5}
	survivorEmp := &model.Employee{OfficeID: office.ID, Name: "Frank", Position: "Clerk", Potential: 5}
	require.NoError(t, db.Create(doomed).Error)
	require.NoError(t, db.Create(survivorEmp).Error)

	dependent := &model.Report{
		Content:        "walked the floor with Eve",
		Vibe:           7,
		CallType:       model.CallFOV,
		OfficeID:       &office.ID,
		EmployeeID:     &doomed.ID,
		PrimaryOwnerID: owner.ID,
		AuthorID:       user.ID,
	}
	require.NoError(t, db.Create(dependent).Error)
	require.NoError(t, db.Model(dependent).Association("AdditionalOwners").Append(extra))

	unrelated := &model.Report{
		Content:        "called Frank about stock levels",
		Vibe:           6,
		CallType:       model.CallPhone,
		OfficeID:       &office.ID,
		EmployeeID:     &survivorEmp.ID,
		PrimaryOwnerID: owner.ID,
		AuthorID:       user.ID,
	}
	require.NoError(t, db.Create(unrelated).Error)

	require.NoError(t, repo.Delete(ctxb(), doomed.ID))

	_, err := repo.FindByID(ctxb(), doomed.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	var dependentCount int64
	require.NoError(t, db.Model(&model.Report{}).Where("id = ?", dependent.ID).Count(&dependentCount).Error)
	assert.Zero(t, dependentCount, "reports logged against the employee must go with it")

	var joinCount int64
	require.NoError(t, db.Table("report_additional_owners").Where("report_id = ?", dependent.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	var survivor model.Report
	require.NoError(t, db.First(&survivor, "id = ?", unrelated.ID).Error)
	assert.Equal(t, survivorEmp.ID, *survivor.EmployeeID)
}

func TestEmployeeDeleteUnknown(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	err := repo.Delete(ctxb(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
