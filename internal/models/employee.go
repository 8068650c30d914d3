package models

import (
	"gorm.io/gorm"
)

// Employee mirrors the employee directory owned by the
// employee-management side of the portal. This subsystem only reads
// it. The same person is addressable by several keys that accumulated
// over time: EmployeeCode (the business identifier), StorageKey (the
// original 24-hex record key), and Phone/Address1 which were used as
// makeshift identifiers before EmployeeCode existed.
type Employee struct {
	gorm.Model
	EmployeeCode string  `gorm:"uniqueIndex;not null" json:"employee_code"`
	StorageKey   string  `gorm:"index" json:"storage_key"`
	FirstName    string  `gorm:"not null" json:"first_name"`
	LastName     string  `gorm:"not null" json:"last_name"`
	ProfilePhoto *string `json:"profile_photo"`
	Phone        string  `gorm:"index" json:"phone"`
	ParentPhone  string  `json:"parent_phone"`
	Address1     string  `json:"address1"`
	Address2     string  `json:"address2"`
	LocationID   string  `json:"location_id"`
	DepartmentID string  `json:"department_id"`
}

func (employee *Employee) DisplayName() string {
	return employee.FirstName + " " + employee.LastName
}

func (employee *Employee) ToSnapshot() *EmployeeSnapshot {
	return &EmployeeSnapshot{
		EmployeeCode: employee.EmployeeCode,
		FirstName:    employee.FirstName,
		LastName:     employee.LastName,
		ProfilePhoto: employee.ProfilePhoto,
		LocationID:   employee.LocationID,
		DepartmentID: employee.DepartmentID,
	}
}
