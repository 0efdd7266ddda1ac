package vendors

type CreateVendorRequest struct {
	AccountNumber           string  `json:"account_number" validate:"omitempty,max=15"`
	Name                    string  `json:"name" validate:"required,max=50"`
	CreditRating            int16   `json:"credit_rating" validate:"gte=0,lte=5"`
	PreferredVendorStatus   *bool   `json:"preferred_vendor_status,omitempty"`
	ActiveFlag              *bool   `json:"active_flag,omitempty"`
	PurchasingWebServiceURL *string `json:"purchasing_web_service_url,omitempty" validate:"omitempty,url"`
}

type UpdateVendorRequest struct {
	AccountNumber           *string `json:"account_number,omitempty" validate:"omitempty,max=15"`
	Name                    *string `json:"name,omitempty" validate:"omitempty,max=50"`
	CreditRating            *int16  `json:"credit_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	PreferredVendorStatus   *bool   `json:"preferred_vendor_status,omitempty"`
	ActiveFlag              *bool   `json:"active_flag,omitempty"`
	PurchasingWebServiceURL *string `json:"purchasing_web_service_url,omitempty" validate:"omitempty,url"`
}
