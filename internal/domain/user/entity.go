package user

type PaymentMethod struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Brand    string `json:"brand,omitempty"`
	LastFour string `json:"last_four,omitempty"`
	Balance  int    `json:"balance,omitempty"`
	Provider string `json:"provider,omitempty"`
}

type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

type User struct {
	ID              string                   `json:"user_id"`
	Profile         Profile                  `json:"profile"`
	PaymentMethods  map[string]PaymentMethod `json:"payment_methods"`
	MembershipLevel string                   `json:"membership_level,omitempty"`
	Bookings        []string                 `json:"bookings"`
}

func (u *User) HasPaymentMethod(id string) bool {
	_, ok := u.PaymentMethods[id]
	return ok
}

func (u *User) AppendBooking(bookingID string) {
	u.Bookings = append(u.Bookings, bookingID)
}
