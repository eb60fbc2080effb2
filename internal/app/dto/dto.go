package dto

// ============ Common ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type BrandingResponse struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	LogoURL string `json:"logo_url"`
}

// ============ Catalog ============

type PackageResponse struct {
	ID       int    `json:"id"`
	Price    string `json:"price"`    // as displayed, e.g. "Ksh 20"
	Amount   int64  `json:"amount"`   // whole currency units
	Currency string `json:"currency"` // ISO 4217
	Duration string `json:"duration"`
	Tier     string `json:"tier"`
}

type CatalogViewResponse struct {
	Filter      string            `json:"filter"`
	Filters     []string          `json:"filters"`
	Expanded    bool              `json:"expanded"`
	Expandable  bool              `json:"expandable"`
	ToggleLabel string            `json:"toggle_label,omitempty"`
	Total       int               `json:"total"`
	Packages    []PackageResponse `json:"packages"`
}

type CatalogQuery struct {
	Filter   string `form:"filter" binding:"omitempty,catalogfilter"`
	Expanded bool   `form:"expanded"`
}

// ============ Sessions ============

type PromptResponse struct {
	Package     PackageResponse `json:"package"`
	Message     string          `json:"message"`
	PhonePrompt string          `json:"phone_prompt"`
}

type SessionResponse struct {
	Token     string              `json:"token,omitempty"`
	SessionID string              `json:"session_id"`
	Catalog   CatalogViewResponse `json:"catalog"`
	Prompt    *PromptResponse     `json:"prompt,omitempty"`
}

type UpdateFilterRequest struct {
	Filter string `json:"filter" binding:"required,catalogfilter"`
}

type UpdateExpandedRequest struct {
	Expanded *bool `json:"expanded" binding:"required"`
}

type SelectPackageRequest struct {
	PackageID int `json:"package_id" binding:"required,gt=0"`
}

type ConfirmRequest struct {
	Phone string `json:"phone"`
}

// ============ Purchases ============

type PurchaseRequest struct {
	PackageID int    `json:"package_id" binding:"required,gt=0"`
	Phone     string `json:"phone"`
}

type STKPushRequestResponse struct {
	Amount      int64  `json:"amount"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type PurchaseOutcomeResponse struct {
	Status  string                  `json:"status"` // succeeded, failed or aborted
	Reason  string                  `json:"reason,omitempty"`
	Message string                  `json:"message,omitempty"`
	Request *STKPushRequestResponse `json:"request,omitempty"`
	Trail   []string                `json:"trail"`
}
