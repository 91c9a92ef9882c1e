package models

type UserRole string
type ApprovalStatus string
type EmployerType string
type Gender string
type EmploymentStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"

	EmployerTypeIndividual  EmployerType = "individual"
	EmployerTypeCompany     EmployerType = "company"
	EmployerTypePartnership EmployerType = "partnership"

	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
