// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./owner.go -destination=../mocks/mock_owner_repository.go -package=mocks OwnerRepositoryIface
//go:generate mockgen -source=./office.go -destination=../mocks/mock_office_repository.go -package=mocks OfficeRepositoryIface
//go:generate mockgen -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -source=./report.go -destination=../mocks/mock_report_repository.go -package=mocks ReportRepositoryIface
