package domain

// User is an authenticated API user. PasswordHash is a bcrypt digest and is
// never serialized.
type User struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	ActiveStatus bool   `json:"activeStatus"`
	AuditFields
}
