package dto

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/shopspring/decimal"
)

// CardNotFoundName is shown for groups whose card was deleted.
const CardNotFoundName = "Card not found"

// CardItemResponse is one item inside a card group.
type CardItemResponse struct {
	ItemResponse
	Exposure        string  `json:"exposure"`
	Paid            *int    `json:"paid,omitempty"`
	Remaining       *int    `json:"remaining,omitempty"`
	ProgressPercent *string `json:"progressPercent,omitempty"`
	FinalMonth      *string `json:"finalMonth,omitempty"`
}

// CardSummaryResponse represents one card group in the card report.
type CardSummaryResponse struct {
	CardID         string             `json:"cardID"`
	Name           string             `json:"name"`
	Emoji          string             `json:"emoji"`
	Color          string             `json:"color"`
	Found          bool               `json:"found"`
	Limit          string             `json:"limit"`
	TotalExposure  string             `json:"totalExposure"`
	TotalThisMonth string             `json:"totalThisMonth"`
	PercentUsed    string             `json:"percentUsed"`
	RawPercentUsed string             `json:"rawPercentUsed"`
	OverLimit      bool               `json:"overLimit"`
	Items          []CardItemResponse `json:"items"`
}

// CardReportResponse represents the card report response
type CardReportResponse struct {
	AsOf  string                `json:"asOf"`
	Cards []CardSummaryResponse `json:"cards"`
}

// ToCardReportResponse converts card summaries to a DTO response
func ToCardReportResponse(summaries []domain.CardSummary, asOf domain.YearMonth) CardReportResponse {
	response := CardReportResponse{
		AsOf:  asOf.String(),
		Cards: make([]CardSummaryResponse, len(summaries)),
	}

	for i, s := range summaries {
		row := CardSummaryResponse{
			CardID:         s.CardID,
			Name:           CardNotFoundName,
			Found:          s.Found,
			Limit:          utils.FormatAmount(decimal.Zero),
			TotalExposure:  utils.FormatAmount(s.TotalExposure),
			TotalThisMonth: utils.FormatAmount(s.TotalThisMonth),
			PercentUsed:    utils.FormatAmount(s.PercentUsed),
			RawPercentUsed: utils.FormatAmount(s.RawPercentUsed),
			OverLimit:      s.OverLimit,
			Items:          make([]CardItemResponse, len(s.Items)),
		}
		if s.Card != nil {
			row.Name = s.Card.Name
			row.Emoji = s.Card.Emoji
			row.Color = s.Card.Color
			row.Limit = utils.FormatAmount(s.Card.Limit)
		}
		for j, ci := range s.Items {
			row.Items[j] = toCardItemResponse(ci)
		}
		response.Cards[i] = row
	}

	return response
}

func toCardItemResponse(ci domain.CardItem) CardItemResponse {
	res := CardItemResponse{
		ItemResponse: ToItemResponse(&ci.Item),
		Exposure:     utils.FormatAmount(ci.Exposure),
	}
	if p := ci.Progress; p != nil {
		paid, remaining := p.Paid, p.Remaining
		pct := utils.FormatAmount(p.ProgressPercent)
		final := p.Final.String()
		res.Paid = &paid
		res.Remaining = &remaining
		res.ProgressPercent = &pct
		res.FinalMonth = &final
	}
	return res
}

// MonthBucketResponse is one final-month bucket of installment purchases.
type MonthBucketResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Label string         `json:"label"`
	Total string         `json:"total"`
	Items []ItemResponse `json:"items"`
}

// InstallmentReportResponse lists the buckets in ascending month order.
type InstallmentReportResponse struct {
	Buckets []MonthBucketResponse `json:"buckets"`
}

// ToInstallmentReportResponse converts buckets to a DTO response
func ToInstallmentReportResponse(buckets []domain.MonthBucket) InstallmentReportResponse {
	response := InstallmentReportResponse{Buckets: make([]MonthBucketResponse, len(buckets))}
	for i, b := range buckets {
		response.Buckets[i] = MonthBucketResponse{
			Month: b.Month,
			Year:  b.Year,
			Label: b.YearMonth.String(),
			Total: utils.FormatAmount(b.Total),
			Items: ToItemResponses(b.Items),
		}
	}
	return response
}

// MonthTotalsResponse is one month row of the yearly chart.
type MonthTotalsResponse struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlyReportResponse represents the yearly income/expense chart
type MonthlyReportResponse struct {
	Year   int                   `json:"year"`
	Months []MonthTotalsResponse `json:"months"`
}

// ToMonthlyReportResponse converts month rows to a DTO response
func ToMonthlyReportResponse(rows []domain.MonthTotals, year int) MonthlyReportResponse {
	response := MonthlyReportResponse{Year: year, Months: make([]MonthTotalsResponse, len(rows))}
	for i, r := range rows {
		response.Months[i] = MonthTotalsResponse{
			Month:   r.Month,
			Income:  utils.FormatAmount(r.Income),
			Expense: utils.FormatAmount(r.Expense),
		}
	}
	return response
}

// ProjectionRowResponse is one future month of the projection.
type ProjectionRowResponse struct {
	Month     string `json:"month"`
	Total     string `json:"total"`
	ItemCount int    `json:"itemCount"`
}

// ProjectionResponse represents the forward installment projection
type ProjectionResponse struct {
	AsOf   string                  `json:"asOf"`
	Months []ProjectionRowResponse `json:"months"`
}

// ToProjectionResponse converts projection rows to a DTO response
func ToProjectionResponse(rows []domain.ProjectionRow, asOf domain.YearMonth) ProjectionResponse {
	response := ProjectionResponse{AsOf: asOf.String(), Months: make([]ProjectionRowResponse, len(rows))}
	for i, r := range rows {
		response.Months[i] = ProjectionRowResponse{
			Month:     r.YearMonth.String(),
			Total:     utils.FormatAmount(r.Total),
			ItemCount: r.ItemCount,
		}
	}
	return response
}

// OverviewResponse represents the dashboard summary
type OverviewResponse struct {
	AsOf                  string `json:"asOf"`
	TotalIncome           string `json:"totalIncome"`
	TotalExpense          string `json:"totalExpense"`
	Surplus               string `json:"surplus"`
	Balance               string `json:"balance"`
	NextBalance           string `json:"nextBalance"`
	TotalExposure         string `json:"totalExposure"`
	InstallmentsThisMonth string `json:"installmentsThisMonth"`
	ItemCount             int    `json:"itemCount"`
}

// ToOverviewResponse converts the overview to a DTO response
func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	return OverviewResponse{
		AsOf:                  o.AsOf.String(),
		TotalIncome:           utils.FormatAmount(o.TotalIncome),
		TotalExpense:          utils.FormatAmount(o.TotalExpense),
		Surplus:               utils.FormatAmount(o.Surplus),
		Balance:               utils.FormatAmount(o.Balance),
		NextBalance:           utils.FormatAmount(o.NextBalance),
		TotalExposure:         utils.FormatAmount(o.TotalExposure),
		InstallmentsThisMonth: utils.FormatAmount(o.InstallmentsThisMonth),
		ItemCount:             o.ItemCount,
	}
}

// ToItemProgressResponse converts an item's progress to a DTO response
func ToItemProgressResponse(item *domain.LineItem, p domain.InstallmentProgress, exposure string, asOf domain.YearMonth) ItemProgressResponse {
	return ItemProgressResponse{
		ItemID:          item.ItemID,
		AsOf:            asOf.String(),
		Paid:            p.Paid,
		Remaining:       p.Remaining,
		Total:           p.Total,
		ProgressPercent: utils.FormatAmount(p.ProgressPercent),
		FirstMonth:      p.First.String(),
		FinalMonth:      p.Final.String(),
		Exposure:        exposure,
	}
}
