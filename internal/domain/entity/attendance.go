package entity

// Attendance is a member's visit to a club. Read-only for the admin.
type Attendance struct {
	ID         int64  `json:"id"`
	MemberID   int64  `json:"socioId"`
	MemberName string `json:"socioNombre"`
	ClubID     int64  `json:"clubId"`
	ClubName   string `json:"clubNombre"`
	Date       string `json:"fechaAsistencia"`
	Time       string `json:"horaAsistencia"`
}
