package services

import (
	"time"

	"workreg_backend/internal/models"
	"workreg_backend/internal/repositories"
	"workreg_backend/internal/services/dto"
	"workreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkerService interface {
	Create(db *gorm.DB, req *dto.CreateWorkerRequest, createdBy uint) (*models.Worker, error)
	GetByID(db *gorm.DB, id uint) (*models.Worker, error)
	List(db *gorm.DB) ([]models.Worker, error)
	ListByEmployer(db *gorm.DB, employerID uint) ([]models.Worker, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateWorkerRequest) (*models.Worker, error)
	Delete(db *gorm.DB, id uint) error
}

type WorkerServiceImpl struct {
	workerRepo   repositories.WorkerRepository
	employerRepo repositories.EmployerRepository
}

func NewWorkerService(workerRepo repositories.WorkerRepository, employerRepo repositories.EmployerRepository) WorkerService {
	return &WorkerServiceImpl{
		workerRepo:   workerRepo,
		employerRepo: employerRepo,
	}
}

// parseDate converts a validated "2006-01-02" string to a time pointer.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func (s *WorkerServiceImpl) Create(db *gorm.DB, req *dto.CreateWorkerRequest, createdBy uint) (*models.Worker, error) {
	// When the worker is linked to a registered employer, verify the FK and
	// denormalize the company name the way the registry forms expect.
	employerName := req.EmployerName
	if req.EmployerID != nil {
		employer, err := s.employerRepo.GetByID(db, *req.EmployerID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrEmployerNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.NewUnavailableError(err)
		}
		if employerName == nil {
			employerName = &employer.CompanyName
		}
	}

	worker := &models.Worker{
		Title:       req.Title,
		FullName:    req.FullName,
		Nationality: req.Nationality,
		DateOfBirth: parseDate(req.DateOfBirth),

		PassportNo:         req.PassportNo,
		PassportIssueDate:  parseDate(req.PassportIssueDate),
		PassportExpiryDate: parseDate(req.PassportExpiryDate),

		VisaType:       req.VisaType,
		VisaNo:         req.VisaNo,
		VisaExpiryDate: parseDate(req.VisaExpiryDate),

		WorkPermitNo:         req.WorkPermitNo,
		WorkPermitExpiryDate: parseDate(req.WorkPermitExpiryDate),

		AddressLocal:     req.AddressLocal,
		SubdistrictLocal: req.SubdistrictLocal,
		DistrictLocal:    req.DistrictLocal,
		ProvinceLocal:    req.ProvinceLocal,
		PostalCodeLocal:  req.PostalCodeLocal,

		Phone:            req.Phone,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,

		EmployerID:     req.EmployerID,
		EmployerName:   employerName,
		Position:       req.Position,
		Salary:         req.Salary,
		WorkStartDate:  parseDate(req.WorkStartDate),
		WorkLocation:   req.WorkLocation,
		JobDescription: req.JobDescription,

		EducationLevel:   req.EducationLevel,
		EducationDetails: req.EducationDetails,

		BloodType:         req.BloodType,
		Allergies:         req.Allergies,
		MedicalConditions: req.MedicalConditions,

		Notes: req.Notes,

		ResignationDate: parseDate(req.ResignationDate),

		ProfilePhotoURL: req.ProfilePhotoURL,
		DocumentsURL:    req.DocumentsURL,

		CreatedBy: &createdBy,
	}

	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		worker.Gender = &g
	}
	worker.EmploymentStatus = models.EmploymentStatusActive
	if req.EmploymentStatus != nil {
		worker.EmploymentStatus = models.EmploymentStatus(*req.EmploymentStatus)
	}

	if err := s.workerRepo.Create(db, worker); err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return worker, nil
}

func (s *WorkerServiceImpl) GetByID(db *gorm.DB, id uint) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}
	return worker, nil
}

func (s *WorkerServiceImpl) List(db *gorm.DB) ([]models.Worker, error) {
	workers, err := s.workerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return workers, nil
}

func (s *WorkerServiceImpl) ListByEmployer(db *gorm.DB, employerID uint) ([]models.Worker, error) {
	workers, err := s.workerRepo.FindByEmployerID(db, employerID)
	if err != nil {
		return nil, apperrors.NewUnavailableError(err)
	}
	return workers, nil
}

func (s *WorkerServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateWorkerRequest) (*models.Worker, error) {
	updates := map[string]interface{}{}

	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setDate := func(col string, v *string) {
		if v != nil {
			updates[col] = parseDate(v)
		}
	}

	setString("title", req.Title)
	setString("full_name", req.FullName)
	setString("nationality", req.Nationality)
	setDate("date_of_birth", req.DateOfBirth)
	setString("gender", req.Gender)

	setString("passport_no", req.PassportNo)
	setDate("passport_issue_date", req.PassportIssueDate)
	setDate("passport_expiry_date", req.PassportExpiryDate)

	setString("visa_type", req.VisaType)
	setString("visa_no", req.VisaNo)
	setDate("visa_expiry_date", req.VisaExpiryDate)

	setString("work_permit_no", req.WorkPermitNo)
	setDate("work_permit_expiry_date", req.WorkPermitExpiryDate)

	setString("address_local", req.AddressLocal)
	setString("subdistrict_local", req.SubdistrictLocal)
	setString("district_local", req.DistrictLocal)
	setString("province_local", req.ProvinceLocal)
	setString("postal_code_local", req.PostalCodeLocal)

	setString("phone", req.Phone)
	setString("email", req.Email)
	setString("emergency_contact", req.EmergencyContact)
	setString("emergency_phone", req.EmergencyPhone)

	if req.EmployerID != nil {
		updates["employer_id"] = *req.EmployerID
	}
	setString("employer_name", req.EmployerName)
	setString("position", req.Position)
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	setDate("work_start_date", req.WorkStartDate)
	setString("work_location", req.WorkLocation)
	setString("job_description", req.JobDescription)

	setString("education_level", req.EducationLevel)
	setString("education_details", req.EducationDetails)

	setString("blood_type", req.BloodType)
	setString("allergies", req.Allergies)
	setString("medical_conditions", req.MedicalConditions)

	setString("notes", req.Notes)

	setString("employment_status", req.EmploymentStatus)
	setDate("resignation_date", req.ResignationDate)

	setString("profile_photo_url", req.ProfilePhotoURL)
	setString("documents_url", req.DocumentsURL)

	if len(updates) == 0 {
		return s.GetByID(db, id)
	}

	worker, err := s.workerRepo.Update(db, id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.NewUnavailableError(err)
	}
	return worker, nil
}

func (s *WorkerServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.workerRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.NewUnavailableError(err)
	}
	return nil
}
