package repositories

import (
	"portalchat/internal/models"

	"gorm.io/gorm"
)

// EmployeeRepository reads the employee directory owned by the
// employee-management side of the portal. This subsystem never writes
// to it; a miss is returned as (nil, nil) because unresolvable
// identifiers are an expected state, not a failure.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

func (er *EmployeeRepository) FindByEmployeeCode(code string) (*models.Employee, error) {
	return er.findOne("employee_code = ?", code)
}

func (er *EmployeeRepository) FindByStorageKey(key string) (*models.Employee, error) {
	return er.findOne("storage_key = ?", key)
}

func (er *EmployeeRepository) FindByPhone(phone string) (*models.Employee, error) {
	return er.findOne("phone = ?", phone)
}

func (er *EmployeeRepository) FindByAddress(address string) (*models.Employee, error) {
	return er.findOne("address1 = ?", address)
}

func (er *EmployeeRepository) findOne(query string, arg string) (*models.Employee, error) {
	var employee models.Employee
	err := er.db.Where(query, arg).First(&employee).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
