package commands

import (
	"staybook/internal/domain/property"
	"staybook/internal/pkg/errs"
)

func capacityExceeded(p *property.Property, guests int) error {
	return errs.Mark(
		errs.Newf("property %s accommodates at most %d guests, got %d", p.ID, p.Capacity.Guests, guests),
		errs.ErrCapacityExceeded,
	)
}

func paymentMethodNotFound(userID, paymentMethodID string) error {
	return errs.Mark(
		errs.Newf("payment method %s not registered for user %s", paymentMethodID, userID),
		errs.ErrPaymentMethodNotFound,
	)
}
