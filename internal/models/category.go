package models

// Category is the DB row shape for the categories table.
type Category struct {
	CategoryName string `db:"category_name"`
	ActiveStatus bool   `db:"active_status"`
	AuditFields
}
