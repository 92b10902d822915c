package employee

// Employee maps to the `employee` table.
type Employee struct {
	ID        int    `json:"employeeId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}
