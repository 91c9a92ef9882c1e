package dto

// Dates arrive as "2006-01-02" strings and are parsed by the service.

// CreateWorkerRequest mirrors the worker registration form.
type CreateWorkerRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=50"`
	FullName    string  `json:"full_name" validate:"required,max=500"`
	Nationality string  `json:"nationality" validate:"required,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`

	PassportNo         string  `json:"passport_no" validate:"required,max=50"`
	PassportIssueDate  *string `json:"passport_issue_date" validate:"omitempty,datetime=2006-01-02"`
	PassportExpiryDate *string `json:"passport_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	VisaType       *string `json:"visa_type" validate:"omitempty,max=50"`
	VisaNo         *string `json:"visa_no" validate:"omitempty,max=50"`
	VisaExpiryDate *string `json:"visa_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	WorkPermitNo         *string `json:"work_permit_no" validate:"omitempty,max=50"`
	WorkPermitExpiryDate *string `json:"work_permit_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	AddressLocal     *string `json:"address_local"`
	SubdistrictLocal *string `json:"subdistrict_local" validate:"omitempty,max=100"`
	DistrictLocal    *string `json:"district_local" validate:"omitempty,max=100"`
	ProvinceLocal    *string `json:"province_local" validate:"omitempty,max=100"`
	PostalCodeLocal  *string `json:"postal_code_local" validate:"omitempty,max=10"`

	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   *string `json:"emergency_phone" validate:"omitempty,max=20"`

	EmployerID     *uint   `json:"employer_id"`
	EmployerName   *string `json:"employer_name" validate:"omitempty,max=500"`
	Position       *string `json:"position" validate:"omitempty,max=255"`
	Salary         *int    `json:"salary" validate:"omitempty,min=0"`
	WorkStartDate  *string `json:"work_start_date" validate:"omitempty,datetime=2006-01-02"`
	WorkLocation   *string `json:"work_location"`
	JobDescription *string `json:"job_description"`

	EducationLevel   *string `json:"education_level" validate:"omitempty,max=100"`
	EducationDetails *string `json:"education_details" validate:"omitempty,max=500"`

	BloodType         *string `json:"blood_type" validate:"omitempty,max=10"`
	Allergies         *string `json:"allergies"`
	MedicalConditions *string `json:"medical_conditions"`

	Notes *string `json:"notes"`

	EmploymentStatus *string `json:"employment_status" validate:"omitempty,oneof=active resigned"`
	ResignationDate  *string `json:"resignation_date" validate:"omitempty,datetime=2006-01-02"`

	ProfilePhotoURL *string `json:"profile_photo_url" validate:"omitempty,max=500"`
	DocumentsURL    *string `json:"documents_url"`
}

// UpdateWorkerRequest is a partial update: nil fields are left untouched.
type UpdateWorkerRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=50"`
	FullName    *string `json:"full_name" validate:"omitempty,max=500"`
	Nationality *string `json:"nationality" validate:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`

	PassportNo         *string `json:"passport_no" validate:"omitempty,max=50"`
	PassportIssueDate  *string `json:"passport_issue_date" validate:"omitempty,datetime=2006-01-02"`
	PassportExpiryDate *string `json:"passport_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	VisaType       *string `json:"visa_type" validate:"omitempty,max=50"`
	VisaNo         *string `json:"visa_no" validate:"omitempty,max=50"`
	VisaExpiryDate *string `json:"visa_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	WorkPermitNo         *string `json:"work_permit_no" validate:"omitempty,max=50"`
	WorkPermitExpiryDate *string `json:"work_permit_expiry_date" validate:"omitempty,datetime=2006-01-02"`

	AddressLocal     *string `json:"address_local"`
	SubdistrictLocal *string `json:"subdistrict_local" validate:"omitempty,max=100"`
	DistrictLocal    *string `json:"district_local" validate:"omitempty,max=100"`
	ProvinceLocal    *string `json:"province_local" validate:"omitempty,max=100"`
	PostalCodeLocal  *string `json:"postal_code_local" validate:"omitempty,max=10"`

	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   *string `json:"emergency_phone" validate:"omitempty,max=20"`

	EmployerID     *uint   `json:"employer_id"`
	EmployerName   *string `json:"employer_name" validate:"omitempty,max=500"`
	Position       *string `json:"position" validate:"omitempty,max=255"`
	Salary         *int    `json:"salary" validate:"omitempty,min=0"`
	WorkStartDate  *string `json:"work_start_date" validate:"omitempty,datetime=2006-01-02"`
	WorkLocation   *string `json:"work_location"`
	JobDescription *string `json:"job_description"`

	EducationLevel   *string `json:"education_level" validate:"omitempty,max=100"`
	EducationDetails *string `json:"education_details" validate:"omitempty,max=500"`

	BloodType         *string `json:"blood_type" validate:"omitempty,max=10"`
	Allergies         *string `json:"allergies"`
	MedicalConditions *string `json:"medical_conditions"`

	Notes *string `json:"notes"`

	EmploymentStatus *string `json:"employment_status" validate:"omitempty,oneof=active resigned"`
	ResignationDate  *string `json:"resignation_date" validate:"omitempty,datetime=2006-01-02"`

	ProfilePhotoURL *string `json:"profile_photo_url" validate:"omitempty,max=500"`
	DocumentsURL    *string `json:"documents_url"`
}
