package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EmployeeSnapshot is a point-in-time copy of an employee's display
// fields, stored on the conversation so the listing keeps working
// after the live employee record becomes unresolvable.
type EmployeeSnapshot struct {
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfilePhoto *string `json:"profile_photo"`
	LocationID   string  `json:"location_id"`
	DepartmentID string  `json:"department_id"`
}

// To satisfy postgres jsonb data type
func (s *EmployeeSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("type assertion to []byte failed")
	}
}

func (s *EmployeeSnapshot) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *EmployeeSnapshot) DisplayName() string {
	if s == nil {
		return ""
	}
	return s.FirstName + " " + s.LastName
}
