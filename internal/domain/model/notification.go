package model

// NotificationRoute identifies a message template on the notification gateway.
type NotificationRoute string

const (
	RouteOrderReceived       NotificationRoute = "order-received"
	RouteOrderProcessing     NotificationRoute = "order-processing"
	RouteOrderOutForDelivery NotificationRoute = "order-out-for-delivery"
	RouteOrderDelivered      NotificationRoute = "order-delivered"
)

// NotificationIntent is a fully assembled outbound notification held for
// operator confirmation. Nothing is sent until the intent is confirmed.
type NotificationIntent struct {
	OrderID int64
	Route   NotificationRoute
	Payload map[string]string
}

// SendResult is the gateway's verdict on a delivery attempt. A false Success
// is an application-level rejection; transport failures are errors instead.
type SendResult struct {
	Success bool
	Message string
}
