// Package http exposes the storefront and admin API over echo.
package http

import (
	"net/http"

	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/application/usecases/queries"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// Authentication is delegated to the gateway in front of this service; user
// identity arrives as an explicit parameter.
type Server struct {
	// Command handlers
	addToCartHandler         commands.AddToCartCommandHandler
	setCartQuantityHandler   commands.SetCartQuantityCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler

	// Query handlers
	getProductsHandler       queries.GetProductsQueryHandler
	getProductHandler        queries.GetProductQueryHandler
	getCartHandler           queries.GetCartQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrderDetailsHandler   queries.GetOrderDetailsQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getAdminStatsHandler     queries.GetAdminStatsQueryHandler
	getSalesReportHandler    queries.GetSalesReportQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	addToCartHandler commands.AddToCartCommandHandler,
	setCartQuantityHandler commands.SetCartQuantityCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAdminStatsHandler queries.GetAdminStatsQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
) *Server {
	return &Server{
		addToCartHandler:         addToCartHandler,
		setCartQuantityHandler:   setCartQuantityHandler,
		removeCartItemHandler:    removeCartItemHandler,
		clearCartHandler:         clearCartHandler,
		placeOrderHandler:        placeOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		getProductsHandler:       getProductsHandler,
		getProductHandler:        getProductHandler,
		getCartHandler:           getCartHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrderDetailsHandler:   getOrderDetailsHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAdminStatsHandler:     getAdminStatsHandler,
		getSalesReportHandler:    getSalesReportHandler,
	}
}

// RegisterRoutes wires every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PUT("/cart/items/:id", s.SetCartQuantity)
	api.DELETE("/cart/items/:id", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/admin/orders", s.GetAllOrders)
	api.POST("/admin/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/admin/stats", s.GetAdminStats)
	api.GET("/admin/reports/sales", s.GetSalesReport)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetProducts handles GET /api/v1/products with an optional category filter.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery(ctx.QueryParam("category"))

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponseFromQuery(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, productResponseFromQuery(p))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		req.Name,
		req.Description,
		req.Price,
		req.Category,
		req.StockQuantity,
		req.Unit,
		req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, productResponseFromAggregate(aggregate))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		id,
		req.Name,
		req.Description,
		req.Price,
		req.Category,
		req.StockQuantity,
		req.Unit,
		req.IsAvailable,
		req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, productResponseFromAggregate(aggregate))
}

// GetCart handles GET /api/v1/cart?user_id=.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("user_id"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CartResponse{
		Items:      make([]CartItemResponse, len(result.Lines)),
		TotalItems: result.TotalItems,
		TotalPrice: result.TotalPrice,
	}
	for i, line := range result.Lines {
		response.Items[i] = CartItemResponse{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Unit:        line.Unit,
			ImageURL:    line.ImageURL,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
			IsAvailable: line.IsAvailable,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items. Repeated adds for the same
// product increment the existing line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddToCartCommand(userID, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.addToCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	if item == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, cartItemResponseFromAggregate(item))
}

// SetCartQuantity handles PUT /api/v1/cart/items/:id. A zero quantity removes
// the line.
func (s *Server) SetCartQuantity(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid cart item id")
	}

	var req SetCartQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCartQuantityCommand(id, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.setCartQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	if item == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, cartItemResponseFromAggregate(item))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid cart item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart?user_id=.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("user_id"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders. Converts the user's cart into an
// order atomically; on failure the cart is left intact.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		userID,
		req.Street,
		req.Area,
		req.City,
		req.Pincode,
		req.Landmark,
		req.Phone,
		req.Notes,
		req.PaymentMethod,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(aggregate, false))
}

// GetCustomerOrders handles GET /api/v1/orders?customer_id=.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customer_id"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:               o.ID.String(),
			Status:           o.Status,
			TotalAmount:      o.TotalAmount,
			PaymentMethod:    o.PaymentMethod,
			PaymentStatus:    o.PaymentStatus,
			ItemCount:        o.ItemCount,
			VerificationCode: o.VerificationCode,
			CreatedAt:        o.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderItemResponse, len(details.Items))
	for i, item := range details.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Unit:        item.Unit,
			ImageURL:    item.ImageURL,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:               details.ID.String(),
		CustomerID:       details.CustomerID.String(),
		Status:           details.Status,
		TotalAmount:      details.TotalAmount,
		PaymentMethod:    details.PaymentMethod,
		PaymentStatus:    details.PaymentStatus,
		Street:           details.Street,
		Area:             details.Area,
		City:             details.City,
		Pincode:          details.Pincode,
		Landmark:         details.Landmark,
		DeliveryPhone:    details.DeliveryPhone,
		DeliveryNotes:    details.DeliveryNotes,
		VerificationCode: details.VerificationCode,
		Items:            items,
		CreatedAt:        details.CreatedAt,
		UpdatedAt:        details.UpdatedAt,
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Customers may only
// cancel orders still pending.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	userID, err := kernel.UUIDFromString(ctx.QueryParam("user_id"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewCancelOrderCommand(id, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate, false))
}

// GetAllOrders handles GET /api/v1/admin/orders with an optional status
// filter.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:               o.ID.String(),
			CustomerID:       o.CustomerID.String(),
			Status:           o.Status,
			TotalAmount:      o.TotalAmount,
			PaymentMethod:    o.PaymentMethod,
			PaymentStatus:    o.PaymentStatus,
			City:             o.City,
			DeliveryPhone:    o.DeliveryPhone,
			VerificationCode: o.VerificationCode,
			ItemCount:        o.ItemCount,
			CreatedAt:        o.CreatedAt,
			UpdatedAt:        o.UpdatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/admin/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, req.VerificationCode)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, code, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangeOrderStatusResponse{
		Order:            orderResponseFromAggregate(aggregate, true),
		VerificationCode: string(code),
	})
}

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	stats, err := s.getAdminStatsHandler.Handle(ctx.Request().Context(), queries.NewGetAdminStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminStatsResponse{
		TotalOrders:      stats.TotalOrders,
		PendingOrders:    stats.PendingOrders,
		TotalProducts:    stats.TotalProducts,
		LowStockProducts: stats.LowStockProducts,
		TotalCustomers:   stats.TotalCustomers,
		TotalRevenue:     stats.TotalRevenue,
		TodayRevenue:     stats.TodayRevenue,
	})
}

// GetSalesReport handles GET /api/v1/admin/reports/sales?period=.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	query, err := queries.NewGetSalesReportQuery(ctx.QueryParam("period"))
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SalesReportResponse{
		Period:            string(report.Period),
		TotalSales:        report.TotalSales,
		TotalOrders:       report.TotalOrders,
		AverageOrderValue: report.AverageOrderValue,
	})
}

func productResponseFromQuery(p queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Unit:          p.Unit,
		IsAvailable:   p.IsAvailable,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func productResponseFromAggregate(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		Category:      p.Category(),
		StockQuantity: p.StockQuantity(),
		Unit:          string(p.Unit()),
		IsAvailable:   p.IsAvailable(),
		ImageURL:      p.ImageURL(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func cartItemResponseFromAggregate(item *cart.Item) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID().String(),
		ProductID: item.ProductID().String(),
		Quantity:  item.Quantity(),
	}
}

// orderResponseFromAggregate maps an order aggregate. includeCode controls
// whether the stored verification code is exposed; admin responses include
// it, customer-facing writes do not.
func orderResponseFromAggregate(o *order.Order, includeCode bool) OrderResponse {
	address := o.DeliveryAddress()

	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ProductID:  item.ProductID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		}
	}

	code := ""
	if includeCode {
		code = string(o.VerificationCode())
	}

	return OrderResponse{
		ID:               o.ID().String(),
		CustomerID:       o.CustomerID().String(),
		Status:           o.Status().String(),
		TotalAmount:      o.TotalAmount(),
		PaymentMethod:    string(o.PaymentMethod()),
		PaymentStatus:    string(o.PaymentStatus()),
		Street:           address.Street(),
		Area:             address.Area(),
		City:             address.City(),
		Pincode:          address.Pincode(),
		Landmark:         address.Landmark(),
		DeliveryPhone:    o.DeliveryPhone(),
		DeliveryNotes:    o.DeliveryNotes(),
		VerificationCode: code,
		Items:            items,
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}
