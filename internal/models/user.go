package models

// User is the DB row shape for the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	ActiveStatus bool   `db:"active_status"`
	AuditFields
}
