package repository

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	CreateService(ctx context.Context, service model.Service) (model.Service, error)
	GetServiceById(ctx context.Context, serviceId string) (model.Service, error)
	GetServicesByServerId(ctx context.Context, serverId string) ([]model.Service, error)
	GetServices(ctx context.Context) ([]model.Service, error)
	ApplyServiceTransition(ctx context.Context, serviceId string, transition model.ServiceTransition) error
	DeleteServiceById(ctx context.Context, serviceId string) error
}

type serviceRepository struct {
	db *gorm.DB
}

func (s *serviceRepository) CreateService(ctx context.Context, service model.Service) (model.Service, error) {
	result := s.db.WithContext(ctx).Create(&service)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "services_server_id_name_key") {
			return service, fmt.Errorf("ServiceRepository.CreateService: %w", apperrors.ErrServiceAlreadyExists)
		}
		return service, fmt.Errorf("ServiceRepository.CreateService: %w", result.Error)
	}
	return service, nil
}

func (s *serviceRepository) GetServiceById(ctx context.Context, serviceId string) (model.Service, error) {
	var service model.Service
	result := s.db.WithContext(ctx).First(&service, "id = ?", serviceId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return service, fmt.Errorf("ServiceRepository.GetServiceById: %w", apperrors.ErrServiceNotFound)
		}
		return service, fmt.Errorf("ServiceRepository.GetServiceById: %w", result.Error)
	}
	return service, nil
}

func (s *serviceRepository) GetServicesByServerId(ctx context.Context, serverId string) ([]model.Service, error) {
	var services []model.Service
	result := s.db.WithContext(ctx).Where("server_id = ?", serverId).Order("name asc").Find(&services)
	if result.Error != nil {
		return nil, fmt.Errorf("ServiceRepository.GetServicesByServerId: %w", result.Error)
	}
	return services, nil
}

func (s *serviceRepository) GetServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	result := s.db.WithContext(ctx).Order("server_id asc, name asc").Find(&services)
	if result.Error != nil {
		return nil, fmt.Errorf("ServiceRepository.GetServices: %w", result.Error)
	}
	return services, nil
}

func (s *serviceRepository) ApplyServiceTransition(ctx context.Context, serviceId string, transition model.ServiceTransition) error {
	result := s.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", serviceId).Updates(transition.Columns())
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.ApplyServiceTransition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServiceRepository.ApplyServiceTransition: %w", apperrors.ErrServiceNotFound)
	}
	return nil
}

func (s *serviceRepository) DeleteServiceById(ctx context.Context, serviceId string) error {
	result := s.db.WithContext(ctx).Where("id = ?", serviceId).Delete(&model.Service{})
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.DeleteServiceById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServiceRepository.DeleteServiceById: %w", apperrors.ErrServiceNotFound)
	}
	return nil
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}
