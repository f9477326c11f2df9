package http

import "time"

// Error is the JSON error body returned by every endpoint.
// RequiresConfirmation is set when a transition carries a warning that the
// caller must acknowledge by retrying with "confirmed": true.
type Error struct {
	Code                 int    `json:"code"`
	Message              string `json:"message"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type ChangeOrderStatusRequest struct {
	Status    string `json:"status"`
	Confirmed bool   `json:"confirmed"`
}

type CancelOrderRequest struct {
	Reason    string `json:"reason"`
	Confirmed bool   `json:"confirmed"`
}

type AssignShipperRequest struct {
	ShipperID string `json:"shipper_id"`
}

type OrderListItem struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customer_name"`
	Status            string    `json:"status"`
	StatusDisplayName string    `json:"status_display_name"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentStatus     string    `json:"payment_status"`
	TotalCents        int64     `json:"total_cents"`
	ShipperID         *string   `json:"shipper_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"price_cents"`
}

type OrderDetail struct {
	ID                 string      `json:"id"`
	CustomerName       string      `json:"customer_name"`
	Status             string      `json:"status"`
	StatusDisplayName  string      `json:"status_display_name"`
	NextStatuses       []string    `json:"next_statuses"`
	PaymentMethod      string      `json:"payment_method"`
	PaymentStatus      string      `json:"payment_status"`
	CanConfirmCod      bool        `json:"can_confirm_cod"`
	ShipperID          *string     `json:"shipper_id,omitempty"`
	CancellationReason *string     `json:"cancellation_reason,omitempty"`
	TotalCents         int64       `json:"total_cents"`
	Items              []OrderItem `json:"items"`
	CreatedAt          time.Time   `json:"created_at"`
}

type VariantPayload struct {
	Label      string `json:"label"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

type ImagePayload struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type CreateProductRequest struct {
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	Description string           `json:"description"`
	PriceCents  int64            `json:"price_cents"`
	Stock       int              `json:"stock"`
	Variants    []VariantPayload `json:"variants"`
	Images      []ImagePayload   `json:"images"`
}

type UpdateProductRequest struct {
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	Images      []ImagePayload `json:"images"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

type SetProductActiveRequest struct {
	Active bool `json:"active"`
}

type ProductListItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	PriceCents   int64  `json:"price_cents"`
	Stock        int    `json:"stock"`
	LowStock     bool   `json:"low_stock"`
	Active       bool   `json:"active"`
	VariantCount int    `json:"variant_count"`
	PrimaryImage string `json:"primary_image,omitempty"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ChangeUserRoleRequest struct {
	Role string `json:"role"`
}

type SetUserBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

type UserListItem struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Blocked bool   `json:"blocked"`
}

type ActivityEntry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatedResponse carries the ID of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
