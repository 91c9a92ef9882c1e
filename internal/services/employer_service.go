package services

import (
	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"
	"workreg_backend/internal/services/dto"
	"workreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EmployerService interface {
	Create(db *gorm.DB, req *dto.CreateEmployerRequest, createdBy uint) (*models.Employer, error)
	GetByID(db *gorm.DB, id uint) (*models.Employer, error)
	List(db *gorm.DB) ([]models.Employer, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateEmployerRequest) (*models.Employer, error)
	Delete(db *gorm.DB, id uint) error
}

type EmployerServiceImpl struct {
	employerRepo repositories.EmployerRepository
	workerRepo   repositories.WorkerRepository
}

func NewEmployerService(employerRepo repositories.EmployerRepository, workerRepo repositories.WorkerRepository) EmployerService {
	return &EmployerServiceImpl{
		employerRepo: employerRepo,
		workerRepo:   workerRepo,
	}
}

func (s *EmployerServiceImpl) Create(db *gorm.DB, req *dto.CreateEmployerRequest, createdBy uint) (*models.Employer, error) {
	employer := &models.Employer{
		EmployerType:       models.EmployerType(req.EmployerType),
		CompanyName:        req.CompanyName,
		TaxID:              req.TaxID,
		RegistrationNumber: req.RegistrationNumber,
		ContactPerson:      req.ContactPerson,
		ContactPosition:    req.ContactPosition,
		Phone:              req.Phone,
		Email:              req.Email,
		Fax:                req.Fax,
		Address:            req.Address,
		Subdistrict:        req.Subdistrict,
		District:           req.District,
		Province:           req.Province,
		PostalCode:         req.PostalCode,
		BusinessType:       req.BusinessType,
		NumberOfEmployees:  req.NumberOfEmployees,
		CapitalAmount:      req.CapitalAmount,
		Notes:              req.Notes,
		DocumentsURL:       req.DocumentsURL,
		CreatedBy:          &createdBy,
	}

	if err := s.employerRepo.Create(db, employer); err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return employer, nil
}

func (s *EmployerServiceImpl) GetByID(db *gorm.DB, id uint) (*models.Employer, error) {
	employer, err := s.employerRepo.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}
	return employer, nil
}

func (s *EmployerServiceImpl) List(db *gorm.DB) ([]models.Employer, error) {
	employers, err := s.employerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return employers, nil
}

func (s *EmployerServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateEmployerRequest) (*models.Employer, error) {
	updates := map[string]interface{}{}

	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setString("employer_type", req.EmployerType)
	setString("company_name", req.CompanyName)
	setString("tax_id", req.TaxID)
	setString("registration_number", req.RegistrationNumber)
	setString("contact_person", req.ContactPerson)
	setString("contact_position", req.ContactPosition)
	setString("phone", req.Phone)
	setString("email", req.Email)
	setString("fax", req.Fax)
	setString("address", req.Address)
	setString("subdistrict", req.Subdistrict)
	setString("district", req.District)
	setString("province", req.Province)
	setString("postal_code", req.PostalCode)
	setString("business_type", req.BusinessType)
	setString("notes", req.Notes)
	setString("documents_url", req.DocumentsURL)
	if req.NumberOfEmployees != nil {
		updates["number_of_employees"] = *req.NumberOfEmployees
	}
	if req.CapitalAmount != nil {
		updates["capital_amount"] = *req.CapitalAmount
	}

	if len(updates) == 0 {
		return s.GetByID(db, id)
	}

	employer, err := s.employerRepo.Update(db, id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}
	return employer, nil
}

func (s *EmployerServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.employerRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrEmployerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.NewUnavailableError(err)
	}
	return nil
}
