package dto

import (
	"strconv"
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils"
)

// SetBalanceRequest carries the edited balance. The value may be a JSON number or a
// string; anything unusable is stored as zero.
type SetBalanceRequest struct {
	Balance any `json:"balance"`
}

// RawBalance returns the submitted value as text.
func (r SetBalanceRequest) RawBalance() string {
	switch v := r.Balance.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// BalanceResponse defines the data returned for the balance.
type BalanceResponse struct {
	Balance       string     `json:"balance"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}

// ToBalanceResponse converts a domain.Balance to BalanceResponse DTO
func ToBalanceResponse(b *domain.Balance) BalanceResponse {
	res := BalanceResponse{Balance: utils.FormatAmount(b.Amount)}
	if !b.LastUpdatedAt.IsZero() {
		t := b.LastUpdatedAt
		res.LastUpdatedAt = &t
	}
	return res
}
