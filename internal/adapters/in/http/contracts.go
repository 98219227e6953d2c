package http

import "time"

// ErrorResponse is the JSON error body. Code mirrors the HTTP status so
// clients logging the body alone keep the context.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductResponse is the catalog product JSON shape.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity float64   `json:"stock_quantity"`
	Unit          string    `json:"unit"`
	IsAvailable   bool      `json:"is_available"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateProductRequest is the admin product creation body.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
	ImageURL      string  `json:"image_url"`
}

// UpdateProductRequest is the admin product edit body.
type UpdateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
	IsAvailable   bool    `json:"is_available"`
	ImageURL      string  `json:"image_url"`
}

// AddCartItemRequest adds quantity to the user's line for a product.
type AddCartItemRequest struct {
	UserID    string  `json:"user_id"`
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// SetCartQuantityRequest replaces a line's quantity. Zero removes the line.
type SetCartQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

// CartItemResponse is one cart line with its product snapshot.
type CartItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
	IsAvailable bool    `json:"is_available"`
}

// CartResponse is the cart with computed totals. TotalItems is summed
// quantity, not a line count.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems float64            `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
}

// PlaceOrderRequest is the checkout body.
type PlaceOrderRequest struct {
	UserID        string `json:"user_id"`
	Street        string `json:"street"`
	Area          string `json:"area"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	Landmark      string `json:"landmark"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderResponse is the order JSON shape. VerificationCode is empty unless the
// serving query decided the caller may see it.
type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id,omitempty"`
	Status           string              `json:"status"`
	TotalAmount      float64             `json:"total_amount"`
	PaymentMethod    string              `json:"payment_method"`
	PaymentStatus    string              `json:"payment_status"`
	Street           string              `json:"street,omitempty"`
	Area             string              `json:"area,omitempty"`
	City             string              `json:"city,omitempty"`
	Pincode          string              `json:"pincode,omitempty"`
	Landmark         string              `json:"landmark,omitempty"`
	DeliveryPhone    string              `json:"delivery_phone,omitempty"`
	DeliveryNotes    string              `json:"delivery_notes,omitempty"`
	VerificationCode string              `json:"verification_code,omitempty"`
	ItemCount        int                 `json:"item_count,omitempty"`
	Items            []OrderItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at,omitempty"`
}

// ChangeOrderStatusRequest is the admin transition body. VerificationCode is
// the code collected at the doorstep and only consulted for "delivered".
type ChangeOrderStatusRequest struct {
	Status           string `json:"status"`
	VerificationCode string `json:"verification_code"`
}

// ChangeOrderStatusResponse reports the transition outcome. The code is
// populated only by a transition to out_for_delivery, for admin display.
type ChangeOrderStatusResponse struct {
	Order            OrderResponse `json:"order"`
	VerificationCode string        `json:"verification_code,omitempty"`
}

// AdminStatsResponse is the dashboard counters JSON shape.
type AdminStatsResponse struct {
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	TotalProducts    int     `json:"total_products"`
	LowStockProducts int     `json:"low_stock_products"`
	TotalCustomers   int     `json:"total_customers"`
	TotalRevenue     float64 `json:"total_revenue"`
	TodayRevenue     float64 `json:"today_revenue"`
}

// SalesReportResponse is the sales report JSON shape.
type SalesReportResponse struct {
	Period            string  `json:"period"`
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}
