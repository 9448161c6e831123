package services

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

type ReorderServiceInterface interface {
	// Reorder writes every item's order_index with one independent update
	// per item, all in flight at once. It fails if any update fails, and
	// updates that already landed stay applied.
	Reorder(ctx context.Context, req request_models.ReorderRequest) error
}

type ReorderService struct {
	orderRepo repositories.OrderRepository
}

func NewReorderService(orderRepo repositories.OrderRepository) ReorderServiceInterface {
	return &ReorderService{orderRepo: orderRepo}
}

type orderUpdate struct {
	id    uuid.UUID
	index int
}

func validateReorder(req request_models.ReorderRequest) (dbm.EntityType, []orderUpdate, error) {
	entity, ok := dbm.ParseEntityType(req.EntityType)
	if !ok {
		return "", nil, utils.NewValidationError("entityType", "must be one of: day activity image gallery-image faq")
	}
	if len(req.Items) == 0 {
		return "", nil, utils.NewValidationError("items", "must contain at least one item")
	}

	verr := &utils.ValidationError{}
	updates := make([]orderUpdate, 0, len(req.Items))
	for i, item := range req.Items {
		prefix := "items[" + strconv.Itoa(i) + "]"
		id, err := uuid.Parse(item.ID)
		if item.ID == "" || err != nil {
			verr.Fields = append(verr.Fields, utils.FieldError{Field: prefix + ".id", Message: "must be a valid UUID"})
		}
		if item.OrderIndex == nil {
			verr.Fields = append(verr.Fields, utils.FieldError{Field: prefix + ".order_index", Message: "is required"})
			continue
		}
		updates = append(updates, orderUpdate{id: id, index: *item.OrderIndex})
	}
	if len(verr.Fields) > 0 {
		return "", nil, verr
	}
	return entity, updates, nil
}

func (s *ReorderService) Reorder(ctx context.Context, req request_models.ReorderRequest) error {
	entity, updates, err := validateReorder(req)
	if err != nil {
		return err
	}

	// Plain Group: a failed item must not cancel its siblings.
	var g errgroup.Group
	var failed atomic.Int32
	for _, u := range updates {
		u := u
		g.Go(func() error {
			if err := s.orderRepo.SetOrderIndex(ctx, entity, u.id, u.index); err != nil {
				failed.Add(1)
				return fmt.Errorf("item %s: %w", u.id, err)
			}
			return nil
		})
	}

	// The handler logs the failure once; the message carries the failed count.
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %s: %d of %d updates failed: %v",
			utils.ErrReorderFailed, entity, failed.Load(), len(updates), err)
	}
	return nil
}
