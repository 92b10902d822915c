package appointment

import "time"

// Appointment maps to the `appointment` table.
type Appointment struct {
	ID         int       `json:"appointmentId"`
	Date       time.Time `json:"date"`
	ClientID   int       `json:"clientId"`
	EmployeeID int       `json:"employeeId"`
}
