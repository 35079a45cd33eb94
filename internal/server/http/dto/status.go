package dto

// StatusChangeRequest describes an order status edit.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// NotificationIntent is a pending outbound notification awaiting operator
// confirmation.
type NotificationIntent struct {
	OrderID int64             `json:"order_id"`
	Route   string            `json:"route"`
	Payload map[string]string `json:"payload"`
}

// StatusChangeResponse carries the updated order plus the notification
// intent, if the new status has one. NotificationError is set when the
// status change succeeded but the intent payload could not be assembled.
type StatusChangeResponse struct {
	Order             OrderResponse       `json:"order"`
	Intent            *NotificationIntent `json:"intent,omitempty"`
	NotificationError string              `json:"notification_error,omitempty"`
}

// SendResultResponse reports the outcome of a confirmed notification.
type SendResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
