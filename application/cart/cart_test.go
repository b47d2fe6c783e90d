package cart_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"

	appcart "github.com/easyfind/storefront/application/cart"
	"github.com/easyfind/storefront/constant"
	cartmocks "github.com/easyfind/storefront/mocks/repository/cart"
	catalogmocks "github.com/easyfind/storefront/mocks/repository/catalog"
	txmocks "github.com/easyfind/storefront/mocks/repository/tx"
	"github.com/easyfind/storefront/model"
	cerr "github.com/easyfind/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCartApp_AddItem(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		catalogRepo *catalogmocks.CatalogRepository
	}
	type args struct {
		ctx       context.Context
		sessionID string
		req       *model.AddItemRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first add inserts item with snapshot price",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req:       &model.AddItemRequest{ProductID: 10, Quantity: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("FindOrCreatePreparedTx", mock.Anything, tx, "sess-1").Return(uint64(1), nil).Once()
				f.cartRepo.On("GetItemTx", mock.Anything, tx, uint64(1), uint64(10)).Return(nil, nil).Once()
				f.catalogRepo.On("GetPrice", mock.Anything, tx, uint64(10)).Return(int64(1000), nil).Once()
				f.cartRepo.On("InsertItemTx", mock.Anything, tx, uint64(1), uint64(10), 1, int64(1000)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: repeat add accumulates quantity without re-pricing",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req:       &model.AddItemRequest{ProductID: 10, Quantity: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("FindOrCreatePreparedTx", mock.Anything, tx, "sess-1").Return(uint64(1), nil).Once()
				f.cartRepo.On("GetItemTx", mock.Anything, tx, uint64(1), uint64(10)).Return(&model.OrderItemRow{
					OrderItemID:  7,
					OrderID:      1,
					ProductID:    10,
					Quantity:     1,
					PricePerItem: 1000,
				}, nil).Once()
				// quantity goes 1 -> 3, price snapshot stays; GetPrice is never called
				f.cartRepo.On("SetQuantityTx", mock.Anything, tx, uint64(7), 3).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: empty session id",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "",
				req:       &model.AddItemRequest{ProductID: 10, Quantity: 1},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown product",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req:       &model.AddItemRequest{ProductID: 999, Quantity: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("FindOrCreatePreparedTx", mock.Anything, tx, "sess-1").Return(uint64(1), nil).Once()
				f.cartRepo.On("GetItemTx", mock.Anything, tx, uint64(1), uint64(999)).Return(nil, nil).Once()
				f.catalogRepo.On("GetPrice", mock.Anything, tx, uint64(999)).Return(int64(0), sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req:       &model.AddItemRequest{ProductID: 10, Quantity: 1},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: insert fails and tx rolls back",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req:       &model.AddItemRequest{ProductID: 10, Quantity: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("FindOrCreatePreparedTx", mock.Anything, tx, "sess-1").Return(uint64(1), nil).Once()
				f.cartRepo.On("GetItemTx", mock.Anything, tx, uint64(1), uint64(10)).Return(nil, nil).Once()
				f.catalogRepo.On("GetPrice", mock.Anything, tx, uint64(10)).Return(int64(1000), nil).Once()
				f.cartRepo.On("InsertItemTx", mock.Anything, tx, uint64(1), uint64(10), 1, int64(1000)).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.catalogRepo)

			err := app.AddItem(tt.args.ctx, tt.args.sessionID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestCartApp_GetCart(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		catalogRepo *catalogmocks.CatalogRepository
	}
	type args struct {
		ctx       context.Context
		sessionID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CartResponse
		wantErr  bool
	}{
		{
			name: "success: no prepared order yields empty items, not an error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("GetPreparedOrderID", mock.Anything, "sess-1").Return(uint64(0), nil).Once()
			},
			want: &model.CartResponse{Items: []model.CartItem{}, SessionID: "sess-1"},
		},
		{
			name: "success: returns items of the prepared order",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("GetPreparedOrderID", mock.Anything, "sess-1").Return(uint64(3), nil).Once()
				f.cartRepo.On("ListItems", mock.Anything, uint64(3)).Return([]model.CartItem{
					{OrderItemID: 7, ProductID: 10, Quantity: 3, PricePerItem: 1000, ProductName: "Go in Action", ProductType: "book"},
				}, nil).Once()
			},
			want: &model.CartResponse{
				Items: []model.CartItem{
					{OrderItemID: 7, ProductID: 10, Quantity: 3, PricePerItem: 1000, ProductName: "Go in Action", ProductType: "book"},
				},
				SessionID: "sess-1",
			},
		},
		{
			name: "error: repository failure",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("GetPreparedOrderID", mock.Anything, "sess-1").Return(uint64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.catalogRepo)

			got, err := app.GetCart(tt.args.ctx, tt.args.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCart() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCartApp_UpdateItemQuantity(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		catalogRepo *catalogmocks.CatalogRepository
	}
	type args struct {
		ctx         context.Context
		orderItemID uint64
		quantity    int
		sessionID   string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owned item in prepared order",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderItemID: 7,
				quantity:    5,
				sessionID:   "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("ItemBelongsToSession", mock.Anything, uint64(7), "sess-1").Return(true, nil).Once()
				f.cartRepo.On("SetQuantity", mock.Anything, uint64(7), 5).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: item owned by another session is never mutated",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderItemID: 7,
				quantity:    5,
				sessionID:   "other-sess",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("ItemBelongsToSession", mock.Anything, uint64(7), "other-sess").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: zero quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderItemID: 7,
				quantity:    0,
				sessionID:   "sess-1",
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.catalogRepo)

			err := app.UpdateItemQuantity(tt.args.ctx, tt.args.orderItemID, tt.args.quantity, tt.args.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateItemQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestCartApp_RemoveItem(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		catalogRepo *catalogmocks.CatalogRepository
	}
	type args struct {
		ctx         context.Context
		orderItemID uint64
		sessionID   string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owned item removed",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderItemID: 7,
				sessionID:   "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("ItemBelongsToSession", mock.Anything, uint64(7), "sess-1").Return(true, nil).Once()
				f.cartRepo.On("DeleteItem", mock.Anything, uint64(7)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: item in a completed order fails ownership check",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderItemID: 7,
				sessionID:   "sess-1",
			},
			mockCall: func(f fields) {
				f.cartRepo.On("ItemBelongsToSession", mock.Anything, uint64(7), "sess-1").Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcart.NewCartApp(tt.fields.txRepo, tt.fields.cartRepo, tt.fields.catalogRepo)

			err := app.RemoveItem(tt.args.ctx, tt.args.orderItemID, tt.args.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveItem() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
