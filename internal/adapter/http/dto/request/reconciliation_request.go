package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPaymentDate = errors.New("invalid payment date")
)

// FreightUpdateRequest edits the payout of one delivered order. The pointer
// keeps an explicit 0 distinguishable from an absent field.
type FreightUpdateRequest struct {
	FretePago *float64 `json:"frete_pago" binding:"required"`
}

// BatchRequest selects delivered orders and the payment date applied to all
// of them. The reconciliation screen sends the date as a bare day.
type BatchRequest struct {
	OrderIDs      []string `json:"order_ids" binding:"required"`
	DataPagamento string   `json:"data_pagamento"`
}

// ResolvePaymentDate parses data_pagamento, accepting the date-picker's
// YYYY-MM-DD form and full RFC 3339 timestamps. An empty field resolves to
// the zero time so the use case can apply its own missing-date rule.
func (r BatchRequest) ResolvePaymentDate() (time.Time, error) {
	v := strings.TrimSpace(r.DataPagamento)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidPaymentDate
}
