package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/converter"
	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
	"github.com/kashfety/kashfety-api/internal/domain/repository"
	"github.com/kashfety/kashfety-api/internal/service"
)

var (
	ErrOfferingNotFound   = errors.New("offering not found")
	ErrDoctorRequired     = errors.New("doctor offering requires a doctor_id")
	ErrTestTypeRequired   = errors.New("lab test offering requires a test_type")
	ErrDoctorRoleMismatch = errors.New("referenced user is not a doctor")
)

type OfferingUsecase interface {
	CreateOffering(ctx context.Context, actorID uuid.UUID, req *dto.CreateOfferingRequest) (*dto.OfferingResponse, error)
	GetOffering(ctx context.Context, id uuid.UUID) (*dto.OfferingResponse, error)
	ListByCenter(ctx context.Context, centerID uuid.UUID) (*dto.OfferingListResponse, error)
	UpdateOffering(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateOfferingRequest) (*dto.OfferingResponse, error)
	DeleteOffering(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

type offeringUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	offeringRepo repository.OfferingRepository
	centerRepo   repository.CenterRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewOfferingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	offeringRepo repository.OfferingRepository,
	centerRepo repository.CenterRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) OfferingUsecase {
	return &offeringUsecase{
		db:           db,
		log:          log,
		offeringRepo: offeringRepo,
		centerRepo:   centerRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *offeringUsecase) CreateOffering(ctx context.Context, actorID uuid.UUID, req *dto.CreateOfferingRequest) (*dto.OfferingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	center, err := u.centerRepo.FindByID(tx, req.CenterID)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	kind := entity.OfferingKind(req.Kind)
	switch kind {
	case entity.OfferingKindDoctor:
		if req.DoctorID == nil {
			return nil, ErrDoctorRequired
		}
		doctor, err := u.userRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrUserNotFound
		}
		if doctor.RoleID != entity.RoleIDDoctor {
			return nil, ErrDoctorRoleMismatch
		}
	case entity.OfferingKindLabTest:
		if req.TestType == "" {
			return nil, ErrTestTypeRequired
		}
	}

	active := true
	offering := &entity.Offering{
		CenterID: req.CenterID,
		Kind:     kind,
		DoctorID: req.DoctorID,
		TestType: req.TestType,
		Name:     req.Name,
		IsActive: &active,
	}

	if err := u.offeringRepo.Create(tx, offering); err != nil {
		u.log.Warnf("Failed to create offering: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionOfferingCreate, "offering", offering.ID.String(), offering); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OfferingToResponse(offering), nil
}

func (u *offeringUsecase) GetOffering(ctx context.Context, id uuid.UUID) (*dto.OfferingResponse, error) {
	offering, err := u.offeringRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return nil, err
	}
	if offering == nil {
		return nil, ErrOfferingNotFound
	}

	return converter.OfferingToResponse(offering), nil
}

func (u *offeringUsecase) ListByCenter(ctx context.Context, centerID uuid.UUID) (*dto.OfferingListResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	offerings, err := u.offeringRepo.FindByCenterID(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to list offerings: %+v", err)
		return nil, err
	}

	return &dto.OfferingListResponse{
		Offerings: converter.OfferingsToResponses(offerings),
		Total:     len(offerings),
	}, nil
}

func (u *offeringUsecase) UpdateOffering(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateOfferingRequest) (*dto.OfferingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	offering, err := u.offeringRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return nil, err
	}
	if offering == nil {
		return nil, ErrOfferingNotFound
	}

	oldValue := *offering

	if req.Name != "" {
		offering.Name = req.Name
	}
	if req.TestType != "" {
		offering.TestType = req.TestType
	}
	if req.IsActive != nil {
		offering.IsActive = req.IsActive
	}

	if err := u.offeringRepo.Update(tx, offering); err != nil {
		u.log.Warnf("Failed to update offering: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionOfferingUpdate, "offering", offering.ID.String(), oldValue, offering); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OfferingToResponse(offering), nil
}

func (u *offeringUsecase) DeleteOffering(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	offering, err := u.offeringRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return err
	}
	if offering == nil {
		return ErrOfferingNotFound
	}

	rows, err := u.offeringRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete offering: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrOfferingNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionOfferingDelete, "offering", id.String(), offering); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
