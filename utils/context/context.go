package context

import (
	"context"

	"github.com/easyfind/storefront/constant"
)

// GetSessionID returns the session id placed on the context by the session
// middleware.
func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
