package order

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/model"
	orderrepo "github.com/easyfind/storefront/repository/order"
	"github.com/easyfind/storefront/thirdparty/qrcode"
	"github.com/easyfind/storefront/thirdparty/rabbitmq"
	cerr "github.com/easyfind/storefront/utils/errors"
	"github.com/easyfind/storefront/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CompleteOrder(ctx context.Context, sessionID string) (*model.CompleteOrderResponse, error)
	AttachPhone(ctx context.Context, req *model.SavePhoneRequest) (*model.SavePhoneResponse, error)
	FindOrdersByPhoneTail(ctx context.Context, tail string) (*model.ReservationResponse, error)
	GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetailResponse, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
	encoder   qrcode.CodeEncoder
	publisher *rabbitmq.Publisher
}

func NewOrderApp(orderRepo orderrepo.OrderRepository, encoder qrcode.CodeEncoder, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo, encoder: encoder, publisher: publisher}
}

// CompleteOrder finalizes the session's prepared order and returns its id.
// Calling it with no prepared order present is a not-found error, and
// nothing changes.
func (s *orderAppImpl) CompleteOrder(ctx context.Context, sessionID string) (*model.CompleteOrderResponse, error) {
	if sessionID == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	updated, err := s.orderRepo.CompletePrepared(ctx, sessionID)
	if err != nil {
		logger.Error("[CompleteOrder] complete prepared", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if updated == 0 {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	orderID, err := s.orderRepo.GetLatestCompletedID(ctx, sessionID)
	if err != nil {
		logger.Error("[CompleteOrder] fetch completed order", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if orderID == 0 {
		// the update succeeded but the row is gone: inconsistent state
		logger.Error("[CompleteOrder] completed order missing after update", zap.String("session_id", sessionID))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.OrderCompletedMessage{
			OrderID:     orderID,
			SessionID:   sessionID,
			CompletedAt: time.Now(),
		}
		if err := s.publisher.PublishOrderCompleted(msg); err != nil {
			logger.Error("[CompleteOrder] publish order completed", zap.String("error", err.Error()))
		}
	}

	return &model.CompleteOrderResponse{Success: true, OrderID: orderID}, nil
}

// AttachPhone writes the phone tail onto the session's most recent completed
// order. It is a separate step from completion: the caller captures the
// number after checkout confirmation.
func (s *orderAppImpl) AttachPhone(ctx context.Context, req *model.SavePhoneRequest) (*model.SavePhoneResponse, error) {
	if req.SessionID == "" || req.PhoneTail == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	orderID, err := s.orderRepo.GetLatestCompletedID(ctx, req.SessionID)
	if err != nil {
		logger.Error("[AttachPhone] fetch completed order", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if orderID == 0 {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	if err := s.orderRepo.SetPhone(ctx, orderID, req.PhoneTail); err != nil {
		logger.Error("[AttachPhone] set phone", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.SavePhoneResponse{Success: true, OrderID: orderID}, nil
}

// FindOrdersByPhoneTail returns an empty-result response, not an error, when
// no completed order matches the tail.
func (s *orderAppImpl) FindOrdersByPhoneTail(ctx context.Context, tail string) (*model.ReservationResponse, error) {
	if tail == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	orders, err := s.orderRepo.FindCompletedByPhoneTail(ctx, tail)
	if err != nil {
		logger.Error("[FindOrdersByPhoneTail] query", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if len(orders) == 0 {
		return &model.ReservationResponse{Success: false, Message: "no orders found"}, nil
	}

	return &model.ReservationResponse{Success: true, Orders: orders}, nil
}

func (s *orderAppImpl) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetailResponse, error) {
	row, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderDetail] get order", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	items, err := s.orderRepo.ListOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderDetail] list items", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	var total int64
	for _, it := range items {
		total += it.PricePerItem * int64(it.Quantity)
	}

	resp := &model.OrderDetailResponse{
		Success:     true,
		OrderID:     row.OrderID,
		TotalAmount: total,
		Items:       items,
		QRPayload:   fmt.Sprintf("%s%d", constant.QRPayloadPrefix, row.OrderID),
	}
	if row.OrderDate != nil {
		resp.OrderDate = *row.OrderDate
	}

	if s.encoder != nil {
		png, err := s.encoder.Encode(resp.QRPayload)
		if err != nil {
			logger.Error("[GetOrderDetail] encode qr", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		resp.QR = base64.StdEncoding.EncodeToString(png)
	}

	return resp, nil
}
