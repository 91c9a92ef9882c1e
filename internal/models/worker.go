package models

import "time"

// Worker holds the registry record of a foreign worker, including identity
// documents (passport, visa, work permit) and the current employment link.
type Worker struct {
	BaseModel

	// Personal
	Title       *string    `gorm:"size:50" json:"title"`
	FullName    string     `gorm:"size:500;not null" json:"full_name"`
	Nationality string     `gorm:"size:100;not null" json:"nationality"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender      *Gender    `gorm:"type:varchar(10)" json:"gender"`

	// Passport
	PassportNo         string     `gorm:"size:50;not null" json:"passport_no"`
	PassportIssueDate  *time.Time `gorm:"type:date" json:"passport_issue_date"`
	PassportExpiryDate *time.Time `gorm:"type:date" json:"passport_expiry_date"`

	// Visa
	VisaType       *string    `gorm:"size:50" json:"visa_type"`
	VisaNo         *string    `gorm:"size:50" json:"visa_no"`
	VisaExpiryDate *time.Time `gorm:"type:date" json:"visa_expiry_date"`

	// Work permit
	WorkPermitNo         *string    `gorm:"size:50" json:"work_permit_no"`
	WorkPermitExpiryDate *time.Time `gorm:"type:date" json:"work_permit_expiry_date"`

	// Local address
	AddressLocal     *string `json:"address_local"`
	SubdistrictLocal *string `gorm:"size:100" json:"subdistrict_local"`
	DistrictLocal    *string `gorm:"size:100" json:"district_local"`
	ProvinceLocal    *string `gorm:"size:100" json:"province_local"`
	PostalCodeLocal  *string `gorm:"size:10" json:"postal_code_local"`

	// Contact
	Phone            *string `gorm:"size:20" json:"phone"`
	Email            *string `gorm:"size:320" json:"email"`
	EmergencyContact *string `gorm:"size:255" json:"emergency_contact"`
	EmergencyPhone   *string `gorm:"size:20" json:"emergency_phone"`

	// Employment
	EmployerID     *uint      `gorm:"index" json:"employer_id"`
	EmployerName   *string    `gorm:"size:500" json:"employer_name"`
	Position       *string    `gorm:"size:255" json:"position"`
	Salary         *int       `json:"salary"`
	WorkStartDate  *time.Time `gorm:"type:date" json:"work_start_date"`
	WorkLocation   *string    `json:"work_location"`
	JobDescription *string    `json:"job_description"`

	// Education
	EducationLevel   *string `gorm:"size:100" json:"education_level"`
	EducationDetails *string `gorm:"size:500" json:"education_details"`

	// Health
	BloodType         *string `gorm:"size:10" json:"blood_type"`
	Allergies         *string `json:"allergies"`
	MedicalConditions *string `json:"medical_conditions"`

	Notes *string `json:"notes"`

	EmploymentStatus EmploymentStatus `gorm:"type:varchar(50);default:'active'" json:"employment_status"`
	ResignationDate  *time.Time       `gorm:"type:date" json:"resignation_date"`

	ProfilePhotoURL *string `gorm:"size:500" json:"profile_photo_url"`
	DocumentsURL    *string `json:"documents_url"`

	CreatedBy *uint `json:"created_by"`
}
