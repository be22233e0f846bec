package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/shopspring/decimal"
)

// EntryDateLayout is the wire format of an item's entry date.
const EntryDateLayout = "2006-01-02"

// CreateItemRequest defines the data needed to create a line item.
// Installment expenses must carry the three schedule fields and a card.
type CreateItemRequest struct {
	Nature                domain.Nature   `json:"nature" binding:"required,oneof=INCOME EXPENSE"`
	Kind                  domain.ItemKind `json:"kind" binding:"omitempty,oneof=FIXED INSTALLMENT"` // Defaults to FIXED
	Amount                decimal.Decimal `json:"amount" binding:"gte=0,lte=999999999999.99"`       // Per-installment value for installment items
	CardID                *string         `json:"cardID"`
	FirstInstallmentMonth *int            `json:"firstInstallmentMonth" binding:"omitempty,min=1,max=12"`
	FirstInstallmentYear  *int            `json:"firstInstallmentYear" binding:"omitempty,min=1900,max=9999"`
	InstallmentCount      *int            `json:"installmentCount" binding:"omitempty,min=1,max=600"`
	Description           string          `json:"description" binding:"max=255"`
	Emoji                 string          `json:"emoji" binding:"max=16"`
	Category              string          `json:"category" binding:"max=64"`
	EntryDate             *string         `json:"entryDate" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
}

// UpdateItemRequest re-specifies a whole item; it has the same shape as a create.
type UpdateItemRequest CreateItemRequest

// ItemResponse defines the data returned for a line item.
type ItemResponse struct {
	ItemID                string          `json:"itemID"`
	Nature                domain.Nature   `json:"nature"`
	Kind                  domain.ItemKind `json:"kind"`
	Amount                string          `json:"amount"`
	CardID                *string         `json:"cardID,omitempty"`
	FirstInstallmentMonth *int            `json:"firstInstallmentMonth,omitempty"`
	FirstInstallmentYear  *int            `json:"firstInstallmentYear,omitempty"`
	InstallmentCount      *int            `json:"installmentCount,omitempty"`
	Description           string          `json:"description"`
	Emoji                 string          `json:"emoji"`
	Category              string          `json:"category"`
	EntryDate             string          `json:"entryDate"`
	CreatedAt             time.Time       `json:"createdAt"`
	LastUpdatedAt         time.Time       `json:"lastUpdatedAt"`
}

// ToItemResponse converts a domain.LineItem to ItemResponse DTO
func ToItemResponse(item *domain.LineItem) ItemResponse {
	return ItemResponse{
		ItemID:                item.ItemID,
		Nature:                item.Nature,
		Kind:                  item.Kind,
		Amount:                utils.FormatAmount(item.Amount),
		CardID:                item.CardID,
		FirstInstallmentMonth: item.FirstInstallmentMonth,
		FirstInstallmentYear:  item.FirstInstallmentYear,
		InstallmentCount:      item.InstallmentCount,
		Description:           item.Description,
		Emoji:                 item.Emoji,
		Category:              item.Category,
		EntryDate:             item.EntryDate.Format(EntryDateLayout),
		CreatedAt:             item.CreatedAt,
		LastUpdatedAt:         item.LastUpdatedAt,
	}
}

// ToItemResponses converts a slice of items, reusing the single converter.
func ToItemResponses(items []domain.LineItem) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return res
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListItemsResponse wraps one page of items.
type ListItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	NextToken string         `json:"nextToken,omitempty"`
}

// ItemProgressResponse is the installment progress of one item.
type ItemProgressResponse struct {
	ItemID          string `json:"itemID"`
	AsOf            string `json:"asOf"`
	Paid            int    `json:"paid"`
	Remaining       int    `json:"remaining"`
	Total           int    `json:"total"`
	ProgressPercent string `json:"progressPercent"`
	FirstMonth      string `json:"firstMonth"`
	FinalMonth      string `json:"finalMonth"`
	Exposure        string `json:"exposure"`
}
