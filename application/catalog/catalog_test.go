package catalog_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcatalog "github.com/easyfind/storefront/application/catalog"
	"github.com/easyfind/storefront/constant"
	catalogmocks "github.com/easyfind/storefront/mocks/repository/catalog"
	"github.com/easyfind/storefront/model"
	cerr "github.com/easyfind/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_ListProducts(t *testing.T) {
	type fields struct {
		catalogRepo *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		filter   *model.CatalogFilter
		mockCall func(f fields)
		want     *model.CatalogResponse
		wantErr  bool
	}{
		{
			name: "success: last page is ceil(total / page size)",
			fields: fields{
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			filter: &model.CatalogFilter{Page: 2, ProductType: constant.ProductTypeBook, Sort: constant.SortNewest},
			mockCall: func(f fields) {
				f.catalogRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.CatalogFilter) bool {
					return fl.Page == 2 && fl.ProductType == constant.ProductTypeBook
				}), constant.CatalogPageSize).Return([]model.CatalogItem{
					{ProductID: 10, ProductName: "Go in Action", Price: 1000, ProductType: constant.ProductTypeBook},
				}, int64(20), nil).Once()
			},
			want: &model.CatalogResponse{
				Success: true,
				Data: []model.CatalogItem{
					{ProductID: 10, ProductName: "Go in Action", Price: 1000, ProductType: constant.ProductTypeBook},
				},
				Pagination: model.Pagination{
					Total:       20,
					PerPage:     constant.CatalogPageSize,
					CurrentPage: 2,
					LastPage:    3, // ceil(20/9)
				},
			},
		},
		{
			name: "success: zero page and empty filters fall back to defaults",
			fields: fields{
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			filter: &model.CatalogFilter{},
			mockCall: func(f fields) {
				f.catalogRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.CatalogFilter) bool {
					return fl.Page == 1 && fl.ProductType == constant.ProductTypeBook && fl.Sort == constant.SortNewest
				}), constant.CatalogPageSize).Return([]model.CatalogItem{}, int64(0), nil).Once()
			},
			want: &model.CatalogResponse{
				Success: true,
				Data:    []model.CatalogItem{},
				Pagination: model.Pagination{
					Total:       0,
					PerPage:     constant.CatalogPageSize,
					CurrentPage: 1,
					LastPage:    0,
				},
			},
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				catalogRepo: catalogmocks.NewCatalogRepository(t),
			},
			filter: &model.CatalogFilter{Page: 1, ProductType: constant.ProductTypeBook},
			mockCall: func(f fields) {
				f.catalogRepo.On("List", mock.Anything, mock.Anything, constant.CatalogPageSize).
					Return(nil, int64(0), errors.New("db error")).Once()
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
			app := appcatalog.NewCatalogApp(tt.fields.catalogRepo)

			got, err := app.ListProducts(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCatalogApp_ListCategories(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		catalogRepo.On("ListCategories", mock.Anything).Return([]model.Category{
			{ID: "novel", Name: "novel"},
			{ID: "tech", Name: "tech"},
		}, nil).Once()

		app := appcatalog.NewCatalogApp(catalogRepo)

		got, err := app.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("ListCategories() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "novel" {
			t.Fatalf("ListCategories() = %+v", got)
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		catalogRepo.On("ListCategories", mock.Anything).Return(nil, errors.New("db error")).Once()

		app := appcatalog.NewCatalogApp(catalogRepo)

		_, err := app.ListCategories(context.Background())
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
	})
}

func TestCatalogApp_Search(t *testing.T) {
	t.Run("success: empty product type defaults to book", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		catalogRepo.On("Search", mock.Anything, "go", constant.ProductTypeBook).Return([]model.SearchResult{
			{ProductID: 10, ProductName: "Go in Action", Price: 1000, ProductType: constant.ProductTypeBook},
		}, nil).Once()

		app := appcatalog.NewCatalogApp(catalogRepo)

		got, err := app.Search(context.Background(), "go", "")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(got.Data) != 1 || got.Data[0].ProductName != "Go in Action" {
			t.Fatalf("Search() = %+v", got)
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		catalogRepo.On("Search", mock.Anything, "go", constant.ProductTypeStationery).Return(nil, errors.New("db error")).Once()

		app := appcatalog.NewCatalogApp(catalogRepo)

		_, err := app.Search(context.Background(), "go", constant.ProductTypeStationery)
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
	})
}
