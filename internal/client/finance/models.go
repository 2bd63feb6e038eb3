// Package finance implements the domain operations of the remote API:
// accounts, transactions, budgets, cashflow, and transaction tags. Every
// operation is a GraphQL request built over the session executor; the
// interesting control logic (auth, polling) lives elsewhere.
package finance

// Account is the flattened account summary used across the CLI.
type Account struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	Balance     float64 `json:"balance"`
	Institution string  `json:"institution,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Tag is a transaction tag.
type Tag struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Order            int    `json:"order"`
	TransactionCount int    `json:"transactionCount"`
}

// Transaction is the flattened transaction record.
type Transaction struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	OriginalName string  `json:"original_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	Account      string  `json:"account,omitempty"`
	Merchant     string  `json:"merchant,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Pending      bool    `json:"is_pending"`
	IsRecurring  bool    `json:"is_recurring"`
	Tags         []Tag   `json:"tags,omitempty"`
}

// TransactionFilter narrows a transaction listing. StartDate and EndDate are
// YYYY-MM-DD strings and must be provided together.
type TransactionFilter struct {
	Limit     int
	Offset    int
	StartDate string
	EndDate   string
	AccountID string
}

// CreateTransactionInput describes a manual transaction. Amount is positive
// for income, negative for expenses.
type CreateTransactionInput struct {
	AccountID    string
	Amount       float64
	MerchantName string
	CategoryID   string
	Date         string
	Notes        string
}

// UpdateTransactionInput is a sparse update: nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID   string
	CategoryID      *string
	MerchantName    *string
	GoalID          *string
	Amount          *float64
	Date            *string
	HideFromReports *bool
	NeedsReview     *bool
	Notes           *string
}
