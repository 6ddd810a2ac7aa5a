package models

// Budget tiers accepted by POST /api/generate.
const (
	BudgetTierBudget = "budget"
	BudgetTierMid    = "mid"
	BudgetTierLuxury = "luxury"
)

// BudgetTiers lists the tiers in the order the client presents them.
var BudgetTiers = []string{BudgetTierBudget, BudgetTierMid, BudgetTierLuxury}

type GenerateRequest struct {
	// BudgetTier is one of "budget", "mid" or "luxury".
	BudgetTier string `json:"budgetTier" binding:"required,oneof=budget mid luxury" example:"mid"`
}

// ErrorResponse is the body of every 4xx/5xx answer under /api that is not
// a body validation failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ValidationErrorResponse reports the first invalid field of a JSON body.
// Field is the dotted path and is empty for problems with the body itself.
type ValidationErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}
