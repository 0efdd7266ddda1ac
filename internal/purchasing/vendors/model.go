// Package vendors is plain single-row CRUD for vendor master data.
package vendors

import "time"

type Vendor struct {
	ID                      int64     `json:"id"`
	AccountNumber           string    `json:"account_number"`
	Name                    string    `json:"name"`
	CreditRating            int16     `json:"credit_rating"`
	PreferredVendorStatus   bool      `json:"preferred_vendor_status"`
	ActiveFlag              bool      `json:"active_flag"`
	PurchasingWebServiceURL *string   `json:"purchasing_web_service_url,omitempty"`
	ModifiedDate            time.Time `json:"modified_date"`
}
