package dto

import "github.com/shopspring/decimal"

// TypeSummaryDTO agregado por tipo de documento dentro de un reporte.
type TypeSummaryDTO struct {
	Type  string          `json:"type"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PeriodReportResponse resumen financiero de un período [start, end).
// Fechas en RFC 3339; montos numéricos.
type PeriodReportResponse struct {
	PeriodStart   string           `json:"period_start"`
	PeriodEnd     string           `json:"period_end"`
	TotalInvoiced decimal.Decimal  `json:"total_invoiced"`
	TotalQuotes   decimal.Decimal  `json:"total_quotes"`
	TotalPaid     decimal.Decimal  `json:"total_paid"`
	TotalPending  decimal.Decimal  `json:"total_pending"`
	DocumentCount int              `json:"document_count"`
	ByType        []TypeSummaryDTO `json:"by_type"`
}

// AnnualReportResponse resumen de un año calendario con los doce meses anidados.
type AnnualReportResponse struct {
	Year          int                    `json:"year"`
	TotalInvoiced decimal.Decimal        `json:"total_invoiced"`
	TotalPaid     decimal.Decimal        `json:"total_paid"`
	TotalPending  decimal.Decimal        `json:"total_pending"`
	Months        []PeriodReportResponse `json:"months"`
}
