package model

// StudentReportRow is a flattened student record for tabular reports,
// joined with its class name/section.
type StudentReportRow struct {
	AdmissionNo  string `json:"admission_no"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GuardianName string `json:"guardian_name"`
	ClassName    string `json:"class_name"`
	Section      string `json:"section"`
	Status       string `json:"status"`
}

// EmployeeReportRow is a flattened employee record for tabular reports.
type EmployeeReportRow struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// DashboardStats carries the per-tenant overview counts.
type DashboardStats struct {
	Students          int `json:"students"`
	Employees         int `json:"employees"`
	Classes           int `json:"classes"`
	ActiveTimetables  int `json:"active_timetables"`
	MeetingsThisMonth int `json:"meetings_this_month"`
}
