package domain

// Category labels transactions for reporting. CategoryName is unique.
type Category struct {
	CategoryName string `json:"categoryName"`
	ActiveStatus bool   `json:"activeStatus"`
	AuditFields
}
