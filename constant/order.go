package constant

type OrderStatus string

const (
	OrderStatusPrepared  OrderStatus = "prepared"
	OrderStatusCompleted OrderStatus = "completed"
)

// QRPayloadPrefix is prepended to the order id to form the payload encoded
// into the receipt QR code.
const QRPayloadPrefix = "ORD"
