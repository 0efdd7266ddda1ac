// Package persons is plain single-row CRUD over person records, used by
// purchase orders to resolve the ordering employee.
package persons

import "time"

type Person struct {
	ID             int64     `json:"id"`
	PersonType     string    `json:"person_type"`
	NameStyle      bool      `json:"name_style"`
	Title          *string   `json:"title,omitempty"`
	FirstName      string    `json:"first_name"`
	MiddleName     *string   `json:"middle_name,omitempty"`
	LastName       string    `json:"last_name"`
	Suffix         *string   `json:"suffix,omitempty"`
	EmailPromotion int32     `json:"email_promotion"`
	ModifiedDate   time.Time `json:"modified_date"`
}

type CreatePersonRequest struct {
	PersonType     string  `json:"person_type" validate:"required,len=2"`
	NameStyle      *bool   `json:"name_style,omitempty"`
	Title          *string `json:"title,omitempty" validate:"omitempty,max=8"`
	FirstName      string  `json:"first_name" validate:"required,max=50"`
	MiddleName     *string `json:"middle_name,omitempty" validate:"omitempty,max=50"`
	LastName       string  `json:"last_name" validate:"required,max=50"`
	Suffix         *string `json:"suffix,omitempty" validate:"omitempty,max=10"`
	EmailPromotion *int32  `json:"email_promotion,omitempty" validate:"omitempty,gte=0,lte=2"`
}

type UpdatePersonRequest struct {
	PersonType     *string `json:"person_type,omitempty" validate:"omitempty,len=2"`
	NameStyle      *bool   `json:"name_style,omitempty"`
	Title          *string `json:"title,omitempty" validate:"omitempty,max=8"`
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	MiddleName     *string `json:"middle_name,omitempty" validate:"omitempty,max=50"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Suffix         *string `json:"suffix,omitempty" validate:"omitempty,max=10"`
	EmailPromotion *int32  `json:"email_promotion,omitempty" validate:"omitempty,gte=0,lte=2"`
}
