package dto

// CreateEmployerRequest mirrors the employer registration form.
type CreateEmployerRequest struct {
	EmployerType string `json:"employer_type" validate:"required,oneof=individual company partnership"`
	CompanyName  string `json:"company_name" validate:"required,max=500"`
	TaxID        string `json:"tax_id" validate:"required,max=20"`

	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=50"`
	ContactPerson      *string `json:"contact_person" validate:"omitempty,max=255"`
	ContactPosition    *string `json:"contact_position" validate:"omitempty,max=255"`
	Phone              *string `json:"phone" validate:"omitempty,max=20"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Fax                *string `json:"fax" validate:"omitempty,max=20"`

	Address     *string `json:"address"`
	Subdistrict *string `json:"subdistrict" validate:"omitempty,max=100"`
	District    *string `json:"district" validate:"omitempty,max=100"`
	Province    *string `json:"province" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=10"`

	BusinessType      *string `json:"business_type" validate:"omitempty,max=255"`
	NumberOfEmployees *int    `json:"number_of_employees" validate:"omitempty,min=0"`
	CapitalAmount     *int    `json:"capital_amount" validate:"omitempty,min=0"`

	Notes        *string `json:"notes"`
	DocumentsURL *string `json:"documents_url"`
}

// UpdateEmployerRequest is a partial update: nil fields are left untouched.
type UpdateEmployerRequest struct {
	EmployerType *string `json:"employer_type" validate:"omitempty,oneof=individual company partnership"`
	CompanyName  *string `json:"company_name" validate:"omitempty,max=500"`
	TaxID        *string `json:"tax_id" validate:"omitempty,max=20"`

	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=50"`
	ContactPerson      *string `json:"contact_person" validate:"omitempty,max=255"`
	ContactPosition    *string `json:"contact_position" validate:"omitempty,max=255"`
	Phone              *string `json:"phone" validate:"omitempty,max=20"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Fax                *string `json:"fax" validate:"omitempty,max=20"`

	Address     *string `json:"address"`
	Subdistrict *string `json:"subdistrict" validate:"omitempty,max=100"`
	District    *string `json:"district" validate:"omitempty,max=100"`
	Province    *string `json:"province" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=10"`

	BusinessType      *string `json:"business_type" validate:"omitempty,max=255"`
	NumberOfEmployees *int    `json:"number_of_employees" validate:"omitempty,min=0"`
	CapitalAmount     *int    `json:"capital_amount" validate:"omitempty,min=0"`

	Notes        *string `json:"notes"`
	DocumentsURL *string `json:"documents_url"`
}
