package impl

import (
	"context"
	"log/slog"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
)

// shopForActor resolves the shop a staff member works for.
func shopForActor(ctx context.Context, shopRepo repository.ShopRepository, actor *entity.User) (*entity.Shop, error) {
	var (
		shop *entity.Shop
		err  error
	)

	switch actor.Role {
	case entity.RoleOwner:
		shop, err = shopRepo.FindByOwner(ctx, actor.ID)
	case entity.RoleEmployee:
		if actor.AssociatedShopID == nil {
			return nil, domainerrors.ErrShopNotFound
		}
		shop, err = shopRepo.FindByID(ctx, *actor.AssociatedShopID)
	default:
		return nil, domainerrors.ErrForbidden.WithDetails("shop staff only")
	}

	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// moveObject copies src to dst and then removes src. A failed copy is reported
// so the caller can keep referencing src; a failed delete only leaves garbage
// for the sweeper.
func moveObject(ctx context.Context, store service.ObjectStore, logger *slog.Logger, dst, src string) error {
	if err := store.Copy(ctx, dst, src); err != nil {
		return err
	}

	if err := store.Delete(ctx, src); err != nil {
		logger.Warn("Failed to delete moved object",
			slog.String("key", src),
			slog.Any("error", err),
		)
	}

	return nil
}

// asStorageError extracts the typed storage failure, wrapping anything else.
func asStorageError(op service.StorageOp, key string, err error) *service.StorageError {
	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		return storageErr
	}

	return &service.StorageError{Op: op, Key: key, Err: err}
}

// publish delivers events, logging rather than failing the caller.
func publish(ctx context.Context, notifier service.Notifier, logger *slog.Logger, events ...service.Event) {
	if err := notifier.Publish(ctx, events...); err != nil {
		logger.Warn("Failed to publish events", slog.Any("error", err))
	}
}
