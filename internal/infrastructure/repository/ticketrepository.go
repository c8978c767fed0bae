package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket already exists", t.ID())
		}
		r.logger.Errorw("failed to save ticket", "ticket_id", t.ID(), "error", err)
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	loaded := model.Version
	model.Version = loaded + 1

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, loaded).
		Select("status", "assigned_user_id", "linked_case_id", "updated_at", "version").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if count == 0 {
			return ticket.ErrTicketNotFound
		}
		r.logger.Warnw("ticket version mismatch", "ticket_id", t.ID(), "version", loaded)
		return ticket.ErrConcurrentUpdate
	}

	t.SetVersion(model.Version)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by ID", "ticket_id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetLatestByThread orders by id as a tiebreak; ids sort by day then sequence.
func (r *TicketRepository) GetLatestByThread(ctx context.Context, threadRef string) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("thread_ref = ?", threadRef).
		Order("created_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by thread", "thread_ref", threadRef, "error", err)
		return nil, fmt.Errorf("failed to get ticket by thread: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
