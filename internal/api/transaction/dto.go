package transaction

type CreateTransactionRequest struct {
	UserID         string  `json:"user_id" validate:"required"`
	Type           string  `json:"type" validate:"required,oneof=income expense"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"required,min=3,max=200"`
	Date           string  `json:"date" validate:"required"`
	Recurring      bool    `json:"recurring"`
	Frequency      string  `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	CategoryID     string  `json:"category_id" validate:"omitempty,max=26"`
	IncomeSourceID string  `json:"income_source_id" validate:"omitempty,max=26"`
}

type UpdateTransactionRequest struct {
	ID             string  `json:"id" validate:"required"`
	UserID         string  `json:"user_id" validate:"required"`
	Type           string  `json:"type" validate:"required,oneof=income expense"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"required,min=3,max=200"`
	Date           string  `json:"date" validate:"required"`
	Recurring      bool    `json:"recurring"`
	Frequency      string  `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	CategoryID     string  `json:"category_id" validate:"omitempty,max=26"`
	IncomeSourceID string  `json:"income_source_id" validate:"omitempty,max=26"`
}

type TransactionResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	Description      string  `json:"description"`
	Date             string  `json:"date"`
	Recurring        bool    `json:"recurring"`
	Frequency        string  `json:"frequency,omitempty"`
	CategoryID       string  `json:"category_id,omitempty"`
	CategoryName     string  `json:"category_name,omitempty"`
	IncomeSourceID   string  `json:"income_source_id,omitempty"`
	IncomeSourceName string  `json:"income_source_name,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}
