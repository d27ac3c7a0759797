//go:build unit

package builder

import (
	"staybook/internal/domain/user"
)

type UserBuilder struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PaymentMethods map[string]user.PaymentMethod
	Bookings       []string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        "USER0001",
		FirstName: "Maria",
		LastName:  "Garcia",
		Email:     "maria.garcia@example.com",
		PaymentMethods: map[string]user.PaymentMethod{
			"card_1_0": {ID: "card_1_0", Type: "credit_card", Brand: "visa", LastFour: "4242"},
		},
	}
}

func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithPaymentMethod(pm user.PaymentMethod) *UserBuilder {
	b.PaymentMethods[pm.ID] = pm
	return b
}

func (b *UserBuilder) WithoutPaymentMethods() *UserBuilder {
	b.PaymentMethods = map[string]user.PaymentMethod{}
	return b
}

func (b *UserBuilder) WithBookings(ids ...string) *UserBuilder {
	b.Bookings = append(b.Bookings, ids...)
	return b
}

func (b *UserBuilder) Build() *user.User {
	return &user.User{
		ID: b.ID,
		Profile: user.Profile{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Email:     b.Email,
		},
		PaymentMethods:  b.PaymentMethods,
		MembershipLevel: "regular",
		Bookings:        append([]string{}, b.Bookings...),
	}
}
