package models

// Employer holds the registry record of a hiring company or individual.
// Plain attribute bag: no invariants beyond required fields.
type Employer struct {
	BaseModel
	EmployerType EmployerType `gorm:"type:varchar(20);not null" json:"employer_type"`

	// Company / principal
	CompanyName        string  `gorm:"size:500;not null" json:"company_name"`
	TaxID              string  `gorm:"size:20;not null" json:"tax_id"`
	RegistrationNumber *string `gorm:"size:50" json:"registration_number"`

	// Contact
	ContactPerson   *string `gorm:"size:255" json:"contact_person"`
	ContactPosition *string `gorm:"size:255" json:"contact_position"`
	Phone           *string `gorm:"size:20" json:"phone"`
	Email           *string `gorm:"size:320" json:"email"`
	Fax             *string `gorm:"size:20" json:"fax"`

	// Address
	Address     *string `json:"address"`
	Subdistrict *string `gorm:"size:100" json:"subdistrict"`
	District    *string `gorm:"size:100" json:"district"`
	Province    *string `gorm:"size:100" json:"province"`
	PostalCode  *string `gorm:"size:10" json:"postal_code"`

	// Business details
	BusinessType      *string `gorm:"size:255" json:"business_type"`
	NumberOfEmployees *int    `json:"number_of_employees"`
	CapitalAmount     *int    `json:"capital_amount"`

	Notes *string `json:"notes"`

	// JSON array of {type, url} kept as text, same as the upload flow emits
	DocumentsURL *string `json:"documents_url"`

	CreatedBy *uint `json:"created_by"`

	// Relations. Deleting an employer orphans its workers; the denormalized
	// employer_name on the worker row stays as the historical record.
	Workers []Worker `gorm:"foreignKey:EmployerID;constraint:OnDelete:SET NULL" json:"workers,omitempty"`
}
