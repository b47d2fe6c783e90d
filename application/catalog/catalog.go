package catalog

import (
	"context"
	"math"

	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/model"
	catalogrepo "github.com/easyfind/storefront/repository/catalog"
	"github.com/easyfind/storefront/utils/errors"
	"github.com/easyfind/storefront/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	ListProducts(ctx context.Context, filter *model.CatalogFilter) (*model.CatalogResponse, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	Search(ctx context.Context, query string, productType constant.ProductType) (*model.SearchResponse, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, filter *model.CatalogFilter) (*model.CatalogResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.ProductType == "" {
		filter.ProductType = constant.ProductTypeBook
	}
	if filter.Sort == "" {
		filter.Sort = constant.SortNewest
	}

	items, total, err := s.catalogRepo.List(ctx, filter, constant.CatalogPageSize)
	if err != nil {
		logger.Error("[ListProducts] error catalogRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lastPage := int(math.Ceil(float64(total) / float64(constant.CatalogPageSize)))

	return &model.CatalogResponse{
		Success: true,
		Data:    items,
		Pagination: model.Pagination{
			Total:       total,
			PerPage:     constant.CatalogPageSize,
			CurrentPage: filter.Page,
			LastPage:    lastPage,
		},
	}, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error catalogRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *catalogAppImpl) Search(ctx context.Context, query string, productType constant.ProductType) (*model.SearchResponse, error) {
	if productType == "" {
		productType = constant.ProductTypeBook
	}

	results, err := s.catalogRepo.Search(ctx, query, productType)
	if err != nil {
		logger.Error("[Search] error catalogRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SearchResponse{Data: results}, nil
}
