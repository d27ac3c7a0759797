package request

type SearchPropertiesRequest struct {
	City         *string `json:"city,omitempty"`
	CheckInDate  *string `json:"check_in_date,omitempty"`
	CheckOutDate *string `json:"check_out_date,omitempty"`
	Guests       *int    `json:"guests,omitempty" binding:"omitempty,min=1"`
	PropertyType *string `json:"property_type,omitempty"`
	MinPrice     *int    `json:"min_price,omitempty" binding:"omitempty,min=0"`
	MaxPrice     *int    `json:"max_price,omitempty" binding:"omitempty,min=0"`
}

type GetPropertyDetailsRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
}

type GetUserProfileRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
