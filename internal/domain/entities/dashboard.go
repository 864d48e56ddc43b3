package entities

// CitizenStats are dashboard statistics for a citizen user
type CitizenStats struct {
	TotalReports    int64 `json:"total_reports"`
	PointsEarned    int   `json:"points_earned"`
	HighRiskReports int64 `json:"high_risk_reports"`
}

// BusinessStats are dashboard statistics for a business user
type BusinessStats struct {
	RegisteredNumbers  int64 `json:"registered_numbers"`
	VerificationChecks int64 `json:"verification_checks"`
	ReportsMentioning  int64 `json:"reports_mentioning"`
}

// AdminStats are platform-wide dashboard statistics
type AdminStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalReports       int64 `json:"total_reports"`
	TotalPhoneNumbers  int64 `json:"total_phone_numbers"`
	HighRiskReports    int64 `json:"high_risk_reports"`
	TotalVerifications int64 `json:"total_verifications"`
}
