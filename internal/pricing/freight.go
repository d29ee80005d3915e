package pricing

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// FreightQuote is the staged result of a freight calculation. Every pipeline
// stage is retained so receipts can show how the final price was built.
type FreightQuote struct {
	CarrierCode         string      `json:"carrier_code"`
	ServiceType         ServiceType `json:"service_type"`
	BillableWeightGrams int         `json:"billable_weight_grams"`
	BasePriceCents      int64       `json:"base_price_cents"`
	MarkupCents         int64       `json:"markup_cents"`
	ProcessingFeeCents  int64       `json:"processing_fee_cents"`
	SubtotalCents       int64       `json:"subtotal_cents"`
	TaxCents            int64       `json:"tax_cents"`
	FinalPriceCents     int64       `json:"final_price_cents"`
	DeliveryDays        int         `json:"delivery_days"`
	// Source records where the base price came from: "table" for the local
	// rate table, "api" for a live carrier answer.
	Source string `json:"source"`
}

// CarrierAPI is the external rate service for API-enabled carriers. Quote
// returns the carrier's base price in cents; implementations must enforce a
// bounded timeout.
type CarrierAPI interface {
	Quote(ctx context.Context, baseURL string, weightKg float64, service string) (int64, error)
}

// CalculateFreight prices a shipment from the carrier's local rate table.
// The bracket lookup is a table lookup, never an interpolation: the governing
// bracket is the lightest one whose bound covers the billable weight.
func CalculateFreight(weightGrams int, service ServiceType, table *CarrierTable) (*FreightQuote, error) {
	base, err := lookupBracket(weightGrams, service, table)
	if err != nil {
		return nil, err
	}
	return buildQuote(weightGrams, service, table, base, "table"), nil
}

// QuoteFreight prices a shipment, preferring the carrier's API when the
// carrier has one. An API failure falls back to the local rate table; when
// neither can answer the caller gets ErrFreightUnavailable, never a zero
// quote.
func QuoteFreight(ctx context.Context, weightGrams int, service ServiceType, table *CarrierTable, api CarrierAPI) (*FreightQuote, error) {
	if table.HasAPI && api != nil {
		base, err := api.Quote(ctx, table.APIBaseURL, float64(weightGrams)/1000.0, string(service))
		if err == nil && base > 0 {
			return buildQuote(weightGrams, service, table, base, "api"), nil
		}
		zap.L().Warn("carrier API quote failed, falling back to local rate table",
			zap.String("carrier", table.Code),
			zap.Error(err))
	}
	return CalculateFreight(weightGrams, service, table)
}

func lookupBracket(weightGrams int, service ServiceType, table *CarrierTable) (int64, error) {
	brackets, ok := table.Brackets[service]
	if !ok || len(brackets) == 0 {
		return 0, fmt.Errorf("%w: carrier %s has no %s rate table", ErrFreightUnavailable, table.Code, service)
	}
	for _, b := range brackets {
		if weightGrams <= b.MaxWeightGrams {
			return b.PriceCents, nil
		}
	}
	return 0, fmt.Errorf("%w: %dg exceeds carrier %s %s rate table", ErrFreightUnavailable, weightGrams, table.Code, service)
}

// buildQuote applies the pricing pipeline in order; each stage compounds on
// the previous subtotal and is retained individually.
func buildQuote(weightGrams int, service ServiceType, table *CarrierTable, base int64, source string) *FreightQuote {
	markup := base * int64(table.MarkupBP) / 10000
	subtotal := base + markup + table.ProcessingFeeCents
	tax := subtotal * int64(table.TaxRateBP) / 10000

	days := table.StandardDays
	if service == ServiceExpress {
		days = table.ExpressDays
	}

	return &FreightQuote{
		CarrierCode:         table.Code,
		ServiceType:         service,
		BillableWeightGrams: weightGrams,
		BasePriceCents:      base,
		MarkupCents:         markup,
		ProcessingFeeCents:  table.ProcessingFeeCents,
		SubtotalCents:       subtotal,
		TaxCents:            tax,
		FinalPriceCents:     subtotal + tax,
		DeliveryDays:        days,
		Source:              source,
	}
}
