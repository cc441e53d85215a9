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

var ErrCenterNotFound = errors.New("center not found")

type CenterUsecase interface {
	CreateCenter(ctx context.Context, actorID uuid.UUID, req *dto.CreateCenterRequest) (*dto.CenterResponse, error)
	GetCenter(ctx context.Context, id uuid.UUID) (*dto.CenterResponse, error)
	ListCenters(ctx context.Context) (*dto.CenterListResponse, error)
	UpdateCenter(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error)
	DeleteCenter(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

type centerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	centerRepo   repository.CenterRepository
	auditService service.AuditService
}

func NewCenterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	centerRepo repository.CenterRepository,
	auditService service.AuditService,
) CenterUsecase {
	return &centerUsecase{
		db:           db,
		log:          log,
		centerRepo:   centerRepo,
		auditService: auditService,
	}
}

func (u *centerUsecase) CreateCenter(ctx context.Context, actorID uuid.UUID, req *dto.CreateCenterRequest) (*dto.CenterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	center := &entity.Center{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		OwnerID:  req.OwnerID,
		IsActive: &active,
	}

	if err := u.centerRepo.Create(tx, center); err != nil {
		u.log.Warnf("Failed to create center: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionCenterCreate, "center", center.ID.String(), center); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) GetCenter(ctx context.Context, id uuid.UUID) (*dto.CenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) ListCenters(ctx context.Context) (*dto.CenterListResponse, error) {
	centers, err := u.centerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list centers: %+v", err)
		return nil, err
	}

	return &dto.CenterListResponse{
		Centers: converter.CentersToResponses(centers),
		Total:   len(centers),
	}, nil
}

func (u *centerUsecase) UpdateCenter(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	center, err := u.centerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	oldValue := *center

	if req.Name != "" {
		center.Name = req.Name
	}
	if req.Address != "" {
		center.Address = req.Address
	}
	if req.Phone != "" {
		center.Phone = req.Phone
	}
	if req.IsActive != nil {
		center.IsActive = req.IsActive
	}

	if err := u.centerRepo.Update(tx, center); err != nil {
		u.log.Warnf("Failed to update center: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionCenterUpdate, "center", center.ID.String(), oldValue, center); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) DeleteCenter(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	center, err := u.centerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return err
	}
	if center == nil {
		return ErrCenterNotFound
	}

	rows, err := u.centerRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete center: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrCenterNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionCenterDelete, "center", id.String(), center); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
