package repository

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServerById(ctx context.Context, serverId string) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	ApplyServerTransition(ctx context.Context, serverId string, transition model.ServerTransition) error
	DeleteServerById(ctx context.Context, serverId string) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "servers_hostname_port_key") {
			return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrServerAlreadyExists)
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Order("name asc").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) ApplyServerTransition(ctx context.Context, serverId string, transition model.ServerTransition) error {
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("id = ?", serverId).Updates(transition.Columns())
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.ApplyServerTransition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.ApplyServerTransition: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId string) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
