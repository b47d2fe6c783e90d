package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrForbidden
	ErrOrderNotFound
	ErrCartItemNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrForbidden:        "item does not belong to this session",
	ErrOrderNotFound:    "order not found",
	ErrCartItemNotFound: "cart item not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrForbidden:        http.StatusForbidden,
	ErrOrderNotFound:    http.StatusNotFound,
	ErrCartItemNotFound: http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrForbidden:        "0004",
	ErrOrderNotFound:    "0005",
	ErrCartItemNotFound: "0006",
}
