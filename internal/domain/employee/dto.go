package employee

// EmployeeResponse is the wire shape for roster/admin views.
type EmployeeResponse struct {
	ID            string  `json:"id"`
	BadgeCode     string  `json:"badge_code"`
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender,omitempty"`
	Department    string  `json:"department,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
	Active        bool    `json:"active"`
}

func ToResponse(emp Employee) EmployeeResponse {
	var doj *string
	if emp.DateOfJoining != nil {
		s := emp.DateOfJoining.Format("2006-01-02")
		doj = &s
	}
	return EmployeeResponse{
		ID:            emp.ID,
		BadgeCode:     emp.BadgeCode,
		FullName:      emp.FullName,
		Gender:        string(emp.Gender),
		Department:    emp.Department,
		DateOfJoining: doj,
		Active:        emp.Active,
	}
}
