package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	catalogapp "github.com/easyfind/storefront/application/catalog"
	cartapp "github.com/easyfind/storefront/application/cart"
	orderapp "github.com/easyfind/storefront/application/order"
	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/model"
	sessionrepo "github.com/easyfind/storefront/repository/session"
	utilsContext "github.com/easyfind/storefront/utils/context"
	"github.com/easyfind/storefront/utils/errors"
	validatorx "github.com/easyfind/storefront/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CatalogApp catalogapp.CatalogApp
	CartApp    cartapp.CartApp
	OrderApp   orderapp.OrderApp
}

func NewTransport(catalogApp catalogapp.CatalogApp, cartApp cartapp.CartApp, orderApp orderapp.OrderApp,
	sessionRepo sessionrepo.Repository, cookieName string, sessionTTL time.Duration) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		CatalogApp: catalogApp,
		CartApp:    cartApp,
		OrderApp:   orderApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/session", rh.Session).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/data", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/search", rh.Search).Methods(http.MethodGet)
	api.HandleFunc("/cart", rh.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/item/{id}", rh.UpdateItemQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/item/{id}", rh.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/complete-order", rh.CompleteOrder).Methods(http.MethodPost)
	api.HandleFunc("/save-phone", rh.SavePhone).Methods(http.MethodPost)
	api.HandleFunc("/reservation", rh.Reservation).Methods(http.MethodGet)
	api.HandleFunc("/order-details/{orderId}", rh.OrderDetails).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	api.Use(SessionMiddleware(sessionRepo, cookieName, sessionTTL))

	return router
}

// Session handler
// @Summary Session probe
// @Description Ensures the caller has a session cookie and reports it active
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/session [get]
func (s *RestHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"session": "active"})
}

// ListCategories handler
// @Summary List book categories
// @Description Distinct category values across all books
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Category
// @Failure 500 {object} errorBody
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, categories)
}

// ListProducts handler
// @Summary Paginated catalog
// @Description Products joined with book attributes, filtered and sorted
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number"
// @Param product_type query string false "book | stationery | all"
// @Param category query string false "Book category, books only"
// @Param sort query string false "newest | price-asc | price-desc"
// @Success 200 {object} model.CatalogResponse
// @Failure 500 {object} errorBody
// @Router /api/data [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	filter := &model.CatalogFilter{
		Page:        page,
		ProductType: constant.ProductType(r.URL.Query().Get("product_type")),
		Category:    r.URL.Query().Get("category"),
		Sort:        constant.SortKey(r.URL.Query().Get("sort")),
	}

	res, err := s.CatalogApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Search handler
// @Summary Search products by name
// @Description Case-insensitive substring match on product name
// @Tags Catalog
// @Produce json
// @Param query query string false "Search term"
// @Param product_type query string false "book | stationery | all"
// @Success 200 {object} model.SearchResponse
// @Failure 500 {object} errorBody
// @Router /api/search [get]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	productType := constant.ProductType(r.URL.Query().Get("product_type"))

	res, err := s.CatalogApp.Search(r.Context(), query, productType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddItem handler
// @Summary Add item to cart
// @Description Adds a product to the session's prepared order, accumulating quantity on repeats
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddItemRequest true "Add Item Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /api/cart [post]
func (s *RestHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sessionID, _ := utilsContext.GetSessionID(ctx)
	if err := s.CartApp.AddItem(ctx, sessionID, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "item added to cart"})
}

// GetCart handler
// @Summary View cart
// @Description Items of the session's prepared order; empty list when there is none
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Failure 500 {object} errorBody
// @Router /api/cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, _ := utilsContext.GetSessionID(ctx)
	res, err := s.CartApp.GetCart(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateItemQuantity handler
// @Summary Change line item quantity
// @Description Sets the quantity of a cart item owned by the caller's session
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Order item id"
// @Param request body model.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errorBody
// @Router /api/cart/item/{id} [put]
func (s *RestHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderItemID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sessionID, _ := utilsContext.GetSessionID(ctx)
	if err := s.CartApp.UpdateItemQuantity(ctx, orderItemID, req.Quantity, sessionID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "quantity updated"})
}

// RemoveItem handler
// @Summary Remove cart item
// @Description Deletes a cart item owned by the caller's session
// @Tags Cart
// @Produce json
// @Param id path int true "Order item id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errorBody
// @Router /api/cart/item/{id} [delete]
func (s *RestHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderItemID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sessionID, _ := utilsContext.GetSessionID(ctx)
	if err := s.CartApp.RemoveItem(ctx, orderItemID, sessionID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "item removed from cart"})
}

// CompleteOrder handler
// @Summary Finalize order
// @Description Moves the session's prepared order to completed and returns its id
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CompleteOrderRequest true "Complete Order Request"
// @Success 200 {object} model.CompleteOrderResponse
// @Failure 404 {object} errorBody
// @Router /api/complete-order [post]
func (s *RestHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CompleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CompleteOrder(ctx, req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SavePhone handler
// @Summary Attach phone tail
// @Description Writes the phone tail onto the session's latest completed order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.SavePhoneRequest true "Save Phone Request"
// @Success 200 {object} model.SavePhoneResponse
// @Failure 400 {object} errorBody
// @Failure 404 {object} errorBody
// @Router /api/save-phone [post]
func (s *RestHandler) SavePhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SavePhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.AttachPhone(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Reservation handler
// @Summary Lookup orders by phone tail
// @Description Completed orders matching the phone suffix, newest first
// @Tags Order
// @Produce json
// @Param tail query string true "Phone tail"
// @Success 200 {object} model.ReservationResponse
// @Failure 400 {object} errorBody
// @Router /api/reservation [get]
func (s *RestHandler) Reservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.OrderApp.FindOrdersByPhoneTail(ctx, r.URL.Query().Get("tail"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// OrderDetails handler
// @Summary Order receipt
// @Description Order metadata, items, total amount and QR code
// @Tags Order
// @Produce json
// @Param orderId path int true "Order id"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} errorBody
// @Router /api/order-details/{orderId} [get]
func (s *RestHandler) OrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseUint(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrderDetail(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
