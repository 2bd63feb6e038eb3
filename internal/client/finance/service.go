package finance

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/abelikov/fingate/internal/client/api"
)

var tagColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service exposes the domain operations over an authenticated executor.
type Service struct {
	exec api.Executor
}

func NewService(exec api.Executor) *Service {
	return &Service{exec: exec}
}

// Accounts lists all accounts with flattened display fields.
func (s *Service) Accounts(ctx context.Context) ([]Account, error) {
	data, err := s.exec.Do(ctx, api.Operation{Name: "GetAccounts", Query: getAccountsQuery})
	if err != nil {
		return nil, err
	}

	var out struct {
		Accounts []struct {
			ID             string  `json:"id"`
			DisplayName    string  `json:"displayName"`
			CurrentBalance float64 `json:"currentBalance"`
			DeactivatedAt  *string `json:"deactivatedAt"`
			Type           struct {
				Name string `json:"name"`
			} `json:"type"`
			Institution *struct {
				Name string `json:"name"`
			} `json:"institution"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(out.Accounts))
	for _, a := range out.Accounts {
		acc := Account{
			ID:       a.ID,
			Name:     a.DisplayName,
			Type:     a.Type.Name,
			Balance:  a.CurrentBalance,
			IsActive: a.DeactivatedAt == nil,
		}
		if a.Institution != nil {
			acc.Institution = a.Institution.Name
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// AccountHoldings returns the investment holdings of one account. The
// payload shape varies by account type, so it is passed through raw.
func (s *Service) AccountHoldings(ctx context.Context, accountID string) (json.RawMessage, error) {
	op := api.Operation{
		Name:      "GetAccountHoldings",
		Query:     getAccountHoldingsQuery,
		Variables: map[string]any{"accountId": accountID},
	}
	return s.exec.Do(ctx, op)
}

// Transactions lists transactions matching the filter, newest first.
func (s *Service) Transactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	if (filter.StartDate == "") != (filter.EndDate == "") {
		return nil, ErrDateRange
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	filters := map[string]any{}
	if filter.StartDate != "" {
		filters["startDate"] = filter.StartDate
		filters["endDate"] = filter.EndDate
	}
	if filter.AccountID != "" {
		filters["accounts"] = []string{filter.AccountID}
	}

	op := api.Operation{
		Name:  "GetTransactionsList",
		Query: getTransactionsQuery,
		Variables: map[string]any{
			"offset":  filter.Offset,
			"limit":   limit,
			"filters": filters,
		},
	}

	data, err := s.exec.Do(ctx, op)
	if err != nil {
		return nil, err
	}

	var out struct {
		AllTransactions struct {
			Results []struct {
				ID          string  `json:"id"`
				Date        string  `json:"date"`
				Amount      float64 `json:"amount"`
				Pending     bool    `json:"pending"`
				Notes       string  `json:"notes"`
				IsRecurring bool    `json:"isRecurring"`
				PlaidName   string  `json:"plaidName"`
				Category    *struct {
					Name string `json:"name"`
				} `json:"category"`
				Merchant *struct {
					Name string `json:"name"`
				} `json:"merchant"`
				Account *struct {
					DisplayName string `json:"displayName"`
				} `json:"account"`
				Tags []Tag `json:"tags"`
			} `json:"results"`
		} `json:"allTransactions"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	txns := make([]Transaction, 0, len(out.AllTransactions.Results))
	for _, r := range out.AllTransactions.Results {
		txn := Transaction{
			ID:           r.ID,
			Date:         r.Date,
			Amount:       r.Amount,
			OriginalName: r.PlaidName,
			Notes:        r.Notes,
			Pending:      r.Pending,
			IsRecurring:  r.IsRecurring,
			Tags:         r.Tags,
		}
		if r.Category != nil {
			txn.Category = r.Category.Name
		}
		if r.Merchant != nil {
			txn.Merchant = r.Merchant.Name
		}
		if r.Account != nil {
			txn.Account = r.Account.DisplayName
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// CreateTransaction records a manual transaction and returns the raw
// mutation payload.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (json.RawMessage, error) {
	op := api.Operation{
		Name:  "Common_CreateTransactionMutation",
		Query: createTransactionMutation,
		Variables: map[string]any{
			"input": map[string]any{
				"accountId":           input.AccountID,
				"amount":              input.Amount,
				"merchantName":        input.MerchantName,
				"categoryId":          input.CategoryID,
				"date":                input.Date,
				"notes":               input.Notes,
				"shouldUpdateBalance": false,
			},
		},
	}
	return s.exec.Do(ctx, op)
}

// UpdateTransaction applies a sparse update: only non-nil fields are sent.
func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (json.RawMessage, error) {
	vars := map[string]any{"id": input.TransactionID}
	if input.CategoryID != nil {
		vars["category"] = *input.CategoryID
	}
	if input.MerchantName != nil {
		vars["name"] = *input.MerchantName
	}
	if input.GoalID != nil {
		vars["goalId"] = *input.GoalID
	}
	if input.Amount != nil {
		vars["amount"] = *input.Amount
	}
	if input.Date != nil {
		vars["date"] = *input.Date
	}
	if input.HideFromReports != nil {
		vars["hideFromReports"] = *input.HideFromReports
	}
	if input.NeedsReview != nil {
		vars["needsReview"] = *input.NeedsReview
	}
	if input.Notes != nil {
		vars["notes"] = *input.Notes
	}

	op := api.Operation{
		Name:      "Web_TransactionDrawerUpdateTransaction",
		Query:     updateTransactionMutation,
		Variables: map[string]any{"input": vars},
	}
	return s.exec.Do(ctx, op)
}

// DeleteTransaction removes a transaction.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID string) error {
	op := api.Operation{
		Name:      "Common_DeleteTransactionMutation",
		Query:     deleteTransactionMutation,
		Variables: map[string]any{"input": map[string]any{"transactionId": transactionID}},
	}
	_, err := s.exec.Do(ctx, op)
	return err
}

// Budgets returns budget data for the given month range (YYYY-MM-DD, both
// or neither).
func (s *Service) Budgets(ctx context.Context, startDate, endDate string) (json.RawMessage, error) {
	if (startDate == "") != (endDate == "") {
		return nil, ErrDateRange
	}

	op := api.Operation{
		Name:  "GetJointPlanningData",
		Query: getBudgetsQuery,
		Variables: map[string]any{
			"startDate": startDate,
			"endDate":   endDate,
		},
	}
	return s.exec.Do(ctx, op)
}

// Cashflow returns the income/expense aggregates for the given date range.
func (s *Service) Cashflow(ctx context.Context, startDate, endDate string) (json.RawMessage, error) {
	if (startDate == "") != (endDate == "") {
		return nil, ErrDateRange
	}

	filters := map[string]any{}
	if startDate != "" {
		filters["startDate"] = startDate
		filters["endDate"] = endDate
	}

	op := api.Operation{
		Name:      "Web_GetCashFlowPage",
		Query:     getCashflowQuery,
		Variables: map[string]any{"filters": filters},
	}
	return s.exec.Do(ctx, op)
}

// Tags lists all household transaction tags.
func (s *Service) Tags(ctx context.Context) ([]Tag, error) {
	data, err := s.exec.Do(ctx, api.Operation{Name: "GetHouseholdTransactionTags", Query: getTransactionTagsQuery})
	if err != nil {
		return nil, err
	}

	var out struct {
		HouseholdTransactionTags []Tag `json:"householdTransactionTags"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out.HouseholdTransactionTags, nil
}

// CreateTag creates a transaction tag. The color must be a "#RRGGBB" hex
// string and the name must not be blank; both are checked client-side
// before the request is built.
func (s *Service) CreateTag(ctx context.Context, name, color string) (*Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTagName
	}
	if !tagColorRe.MatchString(color) {
		return nil, ErrInvalidTagColor
	}

	op := api.Operation{
		Name:      "Common_CreateTransactionTag",
		Query:     createTransactionTagMutation,
		Variables: map[string]any{"name": name, "color": color},
	}

	data, err := s.exec.Do(ctx, op)
	if err != nil {
		return nil, err
	}

	var out struct {
		CreateTransactionTag struct {
			Tag *Tag `json:"tag"`
		} `json:"createTransactionTag"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out.CreateTransactionTag.Tag, nil
}

// DeleteTag removes a transaction tag.
func (s *Service) DeleteTag(ctx context.Context, tagID string) error {
	op := api.Operation{
		Name:      "Common_DeleteTransactionTag",
		Query:     deleteTransactionTagMutation,
		Variables: map[string]any{"tagId": tagID},
	}
	_, err := s.exec.Do(ctx, op)
	return err
}

// SetTransactionTags replaces the tags on a transaction. An empty tagIDs
// list removes all tags.
func (s *Service) SetTransactionTags(ctx context.Context, transactionID string, tagIDs []string) error {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	op := api.Operation{
		Name:  "Web_SetTransactionTags",
		Query: setTransactionTagsMutation,
		Variables: map[string]any{
			"input": map[string]any{
				"transactionId": transactionID,
				"tagIds":        tagIDs,
			},
		},
	}
	_, err := s.exec.Do(ctx, op)
	return err
}
