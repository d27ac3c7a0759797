package booking

// Fee policy. Rounding truncates toward zero at every step, and taxes
// compound on top of both fees; the order below is load-bearing for
// numeric parity with persisted bookings.
const (
	ServiceFeeRate     = 0.12
	TaxRate            = 0.08
	DefaultCleaningFee = 50
)

type CostBreakdown struct {
	Subtotal    int `json:"subtotal"`
	ServiceFee  int `json:"service_fee"`
	CleaningFee int `json:"cleaning_fee"`
	Taxes       int `json:"taxes"`
	Total       int `json:"total"`
}

// ComputeCost derives the full cost breakdown from the nightly prices of
// a stay. cleaningFee <= 0 selects the default flat fee.
func ComputeCost(nightlyPrices []int, cleaningFee int) CostBreakdown {
	if cleaningFee <= 0 {
		cleaningFee = DefaultCleaningFee
	}

	subtotal := 0
	for _, price := range nightlyPrices {
		subtotal += price
	}

	serviceFee := int(float64(subtotal) * ServiceFeeRate)
	taxes := int(float64(subtotal+serviceFee+cleaningFee) * TaxRate)

	return CostBreakdown{
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		CleaningFee: cleaningFee,
		Taxes:       taxes,
		Total:       subtotal + serviceFee + cleaningFee + taxes,
	}
}
