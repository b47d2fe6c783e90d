package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/model"
	cartrepo "github.com/easyfind/storefront/repository/cart"
	catalogrepo "github.com/easyfind/storefront/repository/catalog"
	txrepo "github.com/easyfind/storefront/repository/tx"
	cerr "github.com/easyfind/storefront/utils/errors"
	"github.com/easyfind/storefront/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) error
	GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error)
	UpdateItemQuantity(ctx context.Context, orderItemID uint64, quantity int, sessionID string) error
	RemoveItem(ctx context.Context, orderItemID uint64, sessionID string) error
}

type cartAppImpl struct {
	txRepo      txrepo.TxRepository
	cartRepo    cartrepo.CartRepository
	catalogRepo catalogrepo.CatalogRepository
}

func NewCartApp(txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, catalogRepo catalogrepo.CatalogRepository) CartApp {
	return &cartAppImpl{txRepo: txRepo, cartRepo: cartRepo, catalogRepo: catalogRepo}
}

// AddItem puts a product into the session's prepared order, creating the
// order if the session has none. A repeat add of the same product
// accumulates quantity on the existing line item and keeps the price
// snapshot taken by the first add.
func (s *cartAppImpl) AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) error {
	if sessionID == "" {
		return cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddItem] begin tx", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.cartRepo.FindOrCreatePreparedTx(ctx, tx, sessionID)
	if err != nil {
		logger.Error("[AddItem] find or create prepared order", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	existing, err := s.cartRepo.GetItemTx(ctx, tx, orderID, req.ProductID)
	if err != nil {
		logger.Error("[AddItem] get item", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	if existing != nil {
		if err := s.cartRepo.SetQuantityTx(ctx, tx, existing.OrderItemID, existing.Quantity+req.Quantity); err != nil {
			logger.Error("[AddItem] accumulate quantity", zap.String("error", err.Error()))
			return cerr.SetCustomError(constant.ErrInternal)
		}
	} else {
		price, err := s.catalogRepo.GetPrice(ctx, tx, req.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return cerr.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[AddItem] snapshot price", zap.String("error", err.Error()))
			return cerr.SetCustomError(constant.ErrInternal)
		}
		if err := s.cartRepo.InsertItemTx(ctx, tx, orderID, req.ProductID, req.Quantity, price); err != nil {
			logger.Error("[AddItem] insert item", zap.String("error", err.Error()))
			return cerr.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddItem] commit tx", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// GetCart returns an empty item list, not an error, when the session has no
// prepared order.
func (s *cartAppImpl) GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	if sessionID == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	orderID, err := s.cartRepo.GetPreparedOrderID(ctx, sessionID)
	if err != nil {
		logger.Error("[GetCart] get prepared order", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if orderID == 0 {
		return &model.CartResponse{Items: []model.CartItem{}, SessionID: sessionID}, nil
	}

	items, err := s.cartRepo.ListItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetCart] list items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.CartResponse{Items: items, SessionID: sessionID}, nil
}

func (s *cartAppImpl) UpdateItemQuantity(ctx context.Context, orderItemID uint64, quantity int, sessionID string) error {
	if sessionID == "" || quantity <= 0 {
		return cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	owned, err := s.cartRepo.ItemBelongsToSession(ctx, orderItemID, sessionID)
	if err != nil {
		logger.Error("[UpdateItemQuantity] ownership check", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if !owned {
		return cerr.SetCustomError(constant.ErrForbidden)
	}

	if err := s.cartRepo.SetQuantity(ctx, orderItemID, quantity); err != nil {
		logger.Error("[UpdateItemQuantity] set quantity", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, orderItemID uint64, sessionID string) error {
	if sessionID == "" {
		return cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	owned, err := s.cartRepo.ItemBelongsToSession(ctx, orderItemID, sessionID)
	if err != nil {
		logger.Error("[RemoveItem] ownership check", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if !owned {
		return cerr.SetCustomError(constant.ErrForbidden)
	}

	if err := s.cartRepo.DeleteItem(ctx, orderItemID); err != nil {
		logger.Error("[RemoveItem] delete item", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}
