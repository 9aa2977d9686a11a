package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"constructmart/internal/core/application/usecases/commands"
	"constructmart/internal/core/application/usecases/queries"
	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/generated/servers"
	"constructmart/internal/pkg/auth"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler     commands.RegisterUserCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	assignItemHandler       commands.AssignItemCommandHandler
	rejectItemHandler       commands.RejectItemCommandHandler
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler
	createProductHandler    commands.CreateProductCommandHandler
	updateSettingsHandler   commands.UpdateSettingsCommandHandler

	// Query handlers
	loginHandler              queries.LoginQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	listOrdersHandler         queries.ListOrdersQueryHandler
	getUnassignedItemsHandler queries.GetUnassignedItemsQueryHandler
	listProductsHandler       queries.ListProductsQueryHandler
	getSettingsHandler        queries.GetSettingsQueryHandler
	calculatePricingHandler   queries.CalculatePricingQueryHandler

	tokens *auth.TokenManager
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignItemHandler commands.AssignItemCommandHandler,
	rejectItemHandler commands.RejectItemCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateSettingsHandler commands.UpdateSettingsCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getUnassignedItemsHandler queries.GetUnassignedItemsQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getSettingsHandler queries.GetSettingsQueryHandler,
	calculatePricingHandler queries.CalculatePricingQueryHandler,
	tokens *auth.TokenManager,
) *Server {
	return &Server{
		registerUserHandler:       registerUserHandler,
		createOrderHandler:        createOrderHandler,
		assignItemHandler:         assignItemHandler,
		rejectItemHandler:         rejectItemHandler,
		updateItemStatusHandler:   updateItemStatusHandler,
		createProductHandler:      createProductHandler,
		updateSettingsHandler:     updateSettingsHandler,
		loginHandler:              loginHandler,
		getOrderHandler:           getOrderHandler,
		listOrdersHandler:         listOrdersHandler,
		getUnassignedItemsHandler: getUnassignedItemsHandler,
		listProductsHandler:       listProductsHandler,
		getSettingsHandler:        getSettingsHandler,
		calculatePricingHandler:   calculatePricingHandler,
		tokens:                    tokens,
	}
}

// RegisterUser handles POST /api/v1/auth/register - creates an account and
// returns it with a fresh token pair.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, string(req.Email), req.Password, string(req.Role))
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	pair, err := s.tokens.IssuePair(account)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, authResponse(account, pair))
}

// Login handles POST /api/v1/auth/login - checks credentials and returns a
// token pair.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	query, err := queries.NewLoginQuery(string(req.Email), req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	pair, err := s.tokens.IssuePair(account)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse(account, pair))
}

// RefreshToken handles POST /api/v1/auth/refresh - exchanges a refresh token
// for a new pair. The account is re-read so a deleted user cannot refresh.
func (s *Server) RefreshToken(ctx echo.Context) error {
	var req servers.RefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	principal, err := s.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.loginHandler.GetUserByID(ctx.Request().Context(), principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	pair, err := s.tokens.IssuePair(account)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req servers.CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductId.String())
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	idempotencyKey := ""
	if params.XIdempotencyKey != nil {
		idempotencyKey = *params.XIdempotencyKey
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal.UserID,
		lines,
		req.Street, req.City, deref(req.PostalCode), req.Phone,
		string(req.PaymentMethod),
		deref(req.DeliveryNotes),
		idempotencyKey,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := orderFromAggregate(created)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ListOrders handles GET /api/v1/orders - lists orders scoped to the caller's
// role.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		principal.UserID, principal.Role.String(), derefInt(params.Page), derefInt(params.PageSize))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]servers.OrderSummary, 0, len(page.Orders))
	for _, summary := range page.Orders {
		mapped, mapErr := orderSummaryFromResponse(summary)
		if mapErr != nil {
			return respondError(ctx, mapErr)
		}
		orders = append(orders, mapped)
	}

	return ctx.JSON(http.StatusOK, servers.OrderPage{
		Orders:     orders,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - returns one order with its
// history and audit log.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal.UserID, principal.Role.String())
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	mapped, err := orderFromResponse(response)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapped)
}

// AssignOrderItem handles PUT /api/v1/orders/:orderId/items/:itemId/assign -
// claims an unassigned item for the calling merchant. At most one merchant
// wins; losers get 409.
func (s *Server) AssignOrderItem(ctx echo.Context, orderId, itemId openapi_types.UUID) error {
	principal, err := requireRole(ctx, user.RoleMerchant, user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, itemID, err := orderItemIDs(orderId, itemId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignItemCommand(orderID, itemID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrderItem handles POST /api/v1/orders/:orderId/items/:itemId/reject -
// records that the calling merchant declined the item. The item stays
// claimable by others.
func (s *Server) RejectOrderItem(ctx echo.Context, orderId, itemId openapi_types.UUID) error {
	principal, err := requireRole(ctx, user.RoleMerchant, user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, itemID, err := orderItemIDs(orderId, itemId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectItemCommand(orderID, itemID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItemStatus handles PUT /api/v1/orders/:orderId/items/:itemId/status -
// moves an item through fulfillment. Whether the transition is allowed for
// this caller is the aggregate's decision.
func (s *Server) UpdateOrderItemStatus(ctx echo.Context, orderId, itemId openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req servers.UpdateItemStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	orderID, itemID, err := orderItemIDs(orderId, itemId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(
		orderID, itemID, req.Status, deref(req.Note), principal.UserID, principal.Role.String())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedItems handles GET /api/v1/orders/status/unassigned - lists
// items awaiting a merchant, excluding items the caller already declined.
func (s *Server) GetUnassignedItems(ctx echo.Context, params servers.GetUnassignedItemsParams) error {
	principal, err := requireRole(ctx, user.RoleMerchant, user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUnassignedItemsQuery(
		principal.UserID, derefInt(params.Page), derefInt(params.PageSize))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.getUnassignedItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]servers.UnassignedItem, 0, len(page.Items))
	for _, item := range page.Items {
		mapped, mapErr := unassignedItemFromResponse(item)
		if mapErr != nil {
			return respondError(ctx, mapErr)
		}
		items = append(items, mapped)
	}

	return ctx.JSON(http.StatusOK, servers.UnassignedItemPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// ListProducts handles GET /api/v1/products - lists active catalog products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query, err := queries.NewListProductsQuery(
		deref(params.Category), derefInt(params.Page), derefInt(params.PageSize))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	products := make([]servers.Product, 0, len(page.Products))
	for _, p := range page.Products {
		mapped, mapErr := productFromResponse(p)
		if mapErr != nil {
			return respondError(ctx, mapErr)
		}
		products = append(products, mapped)
	}

	return ctx.JSON(http.StatusOK, servers.ProductPage{
		Products:   products,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
// Admin only.
func (s *Server) CreateProduct(ctx echo.Context) error {
	if _, err := requireRole(ctx, user.RoleAdmin); err != nil {
		return respondError(ctx, err)
	}

	var req servers.CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		req.Name, deref(req.Description), deref(req.Category), req.Unit, price, req.StockQuantity)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	description := created.Description()
	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:            created.ID().Bytes(),
		Name:          created.Name(),
		Description:   &description,
		Category:      created.Category(),
		Unit:          created.Unit(),
		Price:         created.Price().String(),
		StockQuantity: created.StockQuantity(),
	})
}

// GetSettings handles GET /api/v1/settings - returns platform pricing settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	response, err := s.getSettingsHandler.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Settings{
		TaxRate:               response.TaxRate,
		DeliveryFee:           response.DeliveryFee,
		FreeDeliveryThreshold: response.FreeDeliveryThreshold,
		PlatformFee:           response.PlatformFee,
		MinimumOrderValue:     response.MinimumOrderValue,
	})
}

// UpdateSettings handles PUT /api/v1/settings - replaces platform pricing
// settings. Admin only.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	if _, err := requireRole(ctx, user.RoleAdmin); err != nil {
		return respondError(ctx, err)
	}

	var req servers.Settings
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	cmd, err := settingsCommandFromRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateSettingsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CalculateOrderPricing handles POST /api/v1/settings/calculate-pricing -
// prices a prospective order without creating anything.
func (s *Server) CalculateOrderPricing(ctx echo.Context) error {
	var req servers.CalculatePricingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequestBody(ctx)
	}

	lines := make([]queries.PricingLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductId.String())
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		lines = append(lines, queries.PricingLine{ProductID: productID, Quantity: item.Quantity})
	}

	query, err := queries.NewCalculatePricingQuery(lines)
	if err != nil {
		return respondError(ctx, err)
	}

	quote, err := s.calculatePricingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PricingQuote{
		Subtotal:          quote.Subtotal,
		Tax:               quote.Tax,
		DeliveryCharge:    quote.DeliveryCharge,
		PlatformFee:       quote.PlatformFee,
		Total:             quote.Total,
		MinimumOrderValue: quote.MinimumOrderValue,
		MinimumOrderMet:   quote.MinimumOrderMet,
	})
}

func settingsCommandFromRequest(req servers.Settings) (commands.UpdateSettingsCommand, error) {
	taxRate, err := decimal.NewFromString(req.TaxRate)
	if err != nil {
		return commands.UpdateSettingsCommand{}, err
	}
	deliveryFee, err := kernel.MoneyFromString(req.DeliveryFee)
	if err != nil {
		return commands.UpdateSettingsCommand{}, err
	}
	freeThreshold, err := kernel.MoneyFromString(req.FreeDeliveryThreshold)
	if err != nil {
		return commands.UpdateSettingsCommand{}, err
	}
	platformFee, err := kernel.MoneyFromString(req.PlatformFee)
	if err != nil {
		return commands.UpdateSettingsCommand{}, err
	}
	minimumOrderValue, err := kernel.MoneyFromString(req.MinimumOrderValue)
	if err != nil {
		return commands.UpdateSettingsCommand{}, err
	}

	return commands.NewUpdateSettingsCommand(taxRate, deliveryFee, freeThreshold, platformFee, minimumOrderValue)
}

func authResponse(account *user.User, pair auth.TokenPair) servers.AuthResponse {
	return servers.AuthResponse{
		User: servers.AuthUser{
			Id:    account.ID().Bytes(),
			Name:  account.Name(),
			Email: account.Email(),
			Role:  account.Role().String(),
		},
		Tokens: servers.TokenPair{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	}
}

func orderItemIDs(orderId, itemId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	itemID, err := kernel.UUIDFromString(itemId.String())
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, itemID, nil
}

// orderFromAggregate maps a freshly created order aggregate to its wire shape.
// Checkout responds from the aggregate directly so the client sees the order
// it just paid for without a second query.
func orderFromAggregate(o *order.Order) (servers.Order, error) {
	status, err := o.Status()
	if err != nil {
		return servers.Order{}, err
	}

	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		mapped := servers.OrderItem{
			Id:          item.ID().Bytes(),
			ProductId:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Unit:        item.Unit(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			TotalPrice:  item.TotalPrice().String(),
			Status:      item.Status().String(),
		}
		if merchant := item.AssignedMerchant(); merchant != nil {
			id := merchant.Bytes()
			mapped.AssignedMerchantId = &id
		}
		items = append(items, mapped)
	}

	history := make([]servers.StatusHistoryEntry, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		note := entry.Note
		history = append(history, servers.StatusHistoryEntry{
			ItemId:    entry.ItemID.Bytes(),
			Status:    entry.Status.String(),
			Note:      &note,
			Timestamp: entry.Timestamp,
		})
	}

	lifecycle := make([]servers.LifecycleEntry, 0, len(o.Lifecycle()))
	for _, event := range o.Lifecycle() {
		lifecycle = append(lifecycle, servers.LifecycleEntry{
			EventType:   event.EventType,
			Description: event.EventDescription,
			ActorId:     event.TriggeredBy.ID.Bytes(),
			ActorRole:   string(event.TriggeredBy.Role),
			Timestamp:   event.Timestamp,
		})
	}

	postalCode := o.Address().PostalCode()
	deliveryNotes := o.DeliveryNotes()
	return servers.Order{
		Id:             o.ID().Bytes(),
		OrderNumber:    o.OrderNumber(),
		CustomerId:     o.CustomerID().Bytes(),
		Status:         status.String(),
		Street:         o.Address().Street(),
		City:           o.Address().City(),
		PostalCode:     &postalCode,
		Phone:          o.Address().Phone(),
		Subtotal:       o.Totals().Subtotal.String(),
		Tax:            o.Totals().Tax.String(),
		DeliveryCharge: o.Totals().DeliveryCharge.String(),
		PlatformFee:    o.Totals().PlatformFee.String(),
		TotalAmount:    o.Totals().TotalAmount.String(),
		PaymentMethod:  o.PaymentMethod().String(),
		DeliveryNotes:  &deliveryNotes,
		CreatedAt:      o.CreatedAt(),
		Items:          items,
		StatusHistory:  &history,
		Lifecycle:      &lifecycle,
	}, nil
}

// orderFromResponse maps the read model to its wire shape.
func orderFromResponse(response queries.OrderResponse) (servers.Order, error) {
	id, err := uuid.Parse(response.ID)
	if err != nil {
		return servers.Order{}, err
	}
	customerID, err := uuid.Parse(response.CustomerID)
	if err != nil {
		return servers.Order{}, err
	}

	items := make([]servers.OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		mapped, mapErr := orderItemFromResponse(item)
		if mapErr != nil {
			return servers.Order{}, mapErr
		}
		items = append(items, mapped)
	}

	history := make([]servers.StatusHistoryEntry, 0, len(response.StatusHistory))
	for _, entry := range response.StatusHistory {
		itemID, parseErr := uuid.Parse(entry.ItemID)
		if parseErr != nil {
			return servers.Order{}, parseErr
		}
		note := entry.Note
		history = append(history, servers.StatusHistoryEntry{
			ItemId:    itemID,
			Status:    entry.Status,
			Note:      &note,
			Timestamp: entry.Timestamp,
		})
	}

	lifecycle := make([]servers.LifecycleEntry, 0, len(response.Lifecycle))
	for _, event := range response.Lifecycle {
		actorID, parseErr := uuid.Parse(event.ActorID)
		if parseErr != nil {
			return servers.Order{}, parseErr
		}
		lifecycle = append(lifecycle, servers.LifecycleEntry{
			EventType:   event.EventType,
			Description: event.Description,
			ActorId:     actorID,
			ActorRole:   event.ActorRole,
			Timestamp:   event.Timestamp,
		})
	}

	postalCode := response.PostalCode
	deliveryNotes := response.DeliveryNotes
	return servers.Order{
		Id:             id,
		OrderNumber:    response.OrderNumber,
		CustomerId:     customerID,
		Status:         response.Status,
		Street:         response.Street,
		City:           response.City,
		PostalCode:     &postalCode,
		Phone:          response.Phone,
		Subtotal:       response.Subtotal,
		Tax:            response.Tax,
		DeliveryCharge: response.DeliveryCharge,
		PlatformFee:    response.PlatformFee,
		TotalAmount:    response.TotalAmount,
		PaymentMethod:  response.PaymentMethod,
		DeliveryNotes:  &deliveryNotes,
		CreatedAt:      response.CreatedAt,
		Items:          items,
		StatusHistory:  &history,
		Lifecycle:      &lifecycle,
	}, nil
}

func orderItemFromResponse(item queries.OrderItemResponse) (servers.OrderItem, error) {
	id, err := uuid.Parse(item.ID)
	if err != nil {
		return servers.OrderItem{}, err
	}
	productID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return servers.OrderItem{}, err
	}

	mapped := servers.OrderItem{
		Id:          id,
		ProductId:   productID,
		ProductName: item.ProductName,
		Unit:        item.Unit,
		UnitPrice:   item.UnitPrice,
		Quantity:    item.Quantity,
		TotalPrice:  item.TotalPrice,
		Status:      item.Status,
	}
	if item.AssignedMerchantID != "" {
		merchantID, err := uuid.Parse(item.AssignedMerchantID)
		if err != nil {
			return servers.OrderItem{}, err
		}
		mapped.AssignedMerchantId = &merchantID
	}
	return mapped, nil
}

func orderSummaryFromResponse(summary queries.OrderSummaryResponse) (servers.OrderSummary, error) {
	id, err := uuid.Parse(summary.ID)
	if err != nil {
		return servers.OrderSummary{}, err
	}
	customerID, err := uuid.Parse(summary.CustomerID)
	if err != nil {
		return servers.OrderSummary{}, err
	}

	return servers.OrderSummary{
		Id:          id,
		OrderNumber: summary.OrderNumber,
		CustomerId:  customerID,
		Status:      summary.Status,
		City:        summary.City,
		TotalAmount: summary.TotalAmount,
		ItemCount:   summary.ItemCount,
		CreatedAt:   summary.CreatedAt,
	}, nil
}

func unassignedItemFromResponse(item queries.UnassignedItemResponse) (servers.UnassignedItem, error) {
	itemID, err := uuid.Parse(item.ItemID)
	if err != nil {
		return servers.UnassignedItem{}, err
	}
	orderID, err := uuid.Parse(item.OrderID)
	if err != nil {
		return servers.UnassignedItem{}, err
	}
	productID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return servers.UnassignedItem{}, err
	}

	return servers.UnassignedItem{
		ItemId:         itemID,
		OrderId:        orderID,
		OrderNumber:    item.OrderNumber,
		ProductId:      productID,
		ProductName:    item.ProductName,
		Unit:           item.Unit,
		UnitPrice:      item.UnitPrice,
		Quantity:       item.Quantity,
		TotalPrice:     item.TotalPrice,
		City:           item.City,
		OrderCreatedAt: item.OrderCreatedAt,
	}, nil
}

func productFromResponse(p queries.ProductResponse) (servers.Product, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return servers.Product{}, err
	}

	description := p.Description
	return servers.Product{
		Id:            id,
		Name:          p.Name,
		Description:   &description,
		Category:      p.Category,
		Unit:          p.Unit,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
