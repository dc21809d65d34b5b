// Package http implements the inbound HTTP adapter. The generated
// ServerInterface dispatches each route here; this package translates between
// wire types and application commands and maps domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	processOrderPaymentHandler commands.ProcessOrderPaymentCommandHandler
	claimItemHandler           commands.ClaimItemCommandHandler
	markItemShippedHandler     commands.MarkItemShippedCommandHandler
	confirmDeliveryHandler     commands.ConfirmDeliveryCommandHandler
	uploadProofHandler         commands.UploadDeliveryProofCommandHandler
	releasePaymentHandler      commands.ReleasePaymentCommandHandler
	openDisputeHandler         commands.OpenDisputeCommandHandler
	resolveDisputeHandler      commands.ResolveDisputeCommandHandler
	rejectDisputeHandler       commands.RejectDisputeCommandHandler

	// Query handlers
	getUnclaimedItemsHandler   queries.GetUnclaimedItemsQueryHandler
	getPaymentsByStatusHandler queries.GetPaymentsByStatusQueryHandler
	getDisputesByStatusHandler queries.GetDisputesByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	processOrderPaymentHandler commands.ProcessOrderPaymentCommandHandler,
	claimItemHandler commands.ClaimItemCommandHandler,
	markItemShippedHandler commands.MarkItemShippedCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	uploadProofHandler commands.UploadDeliveryProofCommandHandler,
	releasePaymentHandler commands.ReleasePaymentCommandHandler,
	openDisputeHandler commands.OpenDisputeCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	rejectDisputeHandler commands.RejectDisputeCommandHandler,
	getUnclaimedItemsHandler queries.GetUnclaimedItemsQueryHandler,
	getPaymentsByStatusHandler queries.GetPaymentsByStatusQueryHandler,
	getDisputesByStatusHandler queries.GetDisputesByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		processOrderPaymentHandler: processOrderPaymentHandler,
		claimItemHandler:           claimItemHandler,
		markItemShippedHandler:     markItemShippedHandler,
		confirmDeliveryHandler:     confirmDeliveryHandler,
		uploadProofHandler:         uploadProofHandler,
		releasePaymentHandler:      releasePaymentHandler,
		openDisputeHandler:         openDisputeHandler,
		resolveDisputeHandler:      resolveDisputeHandler,
		rejectDisputeHandler:       rejectDisputeHandler,
		getUnclaimedItemsHandler:   getUnclaimedItemsHandler,
		getPaymentsByStatusHandler: getPaymentsByStatusHandler,
		getDisputesByStatusHandler: getDisputesByStatusHandler,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	actor, err := actorFromWire(body.ClientId, kernel.RoleClient)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	items := make([]commands.OrderItemSpec, 0, len(body.Items))
	for _, wireItem := range body.Items {
		spec, specErr := itemSpecFromWire(wireItem)
		if specErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, specErr.Error())
		}
		items = append(items, spec)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), body.PaymentMethod, items)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToWire(created))
}

// ProcessOrderPayment handles POST /api/v1/orders/{orderId}/payment.
// Called by the payment provider's capture webhook, so it runs as the system.
func (s *Server) ProcessOrderPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := kernel.NewActorContext(kernel.NewUUID(), kernel.RoleSystem)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewProcessOrderPaymentCommand(actor, orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	captured, err := s.processOrderPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToWire(captured))
}

// GetUnclaimedItems handles GET /api/v1/items/unclaimed.
func (s *Server) GetUnclaimedItems(ctx echo.Context) error {
	query := queries.NewGetUnclaimedItemsQuery()

	items, err := s.getUnclaimedItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve items")
	}

	response := make([]servers.Item, len(items))
	for i, item := range items {
		response[i] = servers.Item{
			Id:           item.ID.Bytes(),
			OrderId:      item.OrderID.Bytes(),
			ProductId:    item.ProductID.Bytes(),
			Destination:  destinationToWire(item.Destination),
			DeliveryDate: item.DeliveryDate,
			ProductPrice: item.ProductPrice.Amount(),
			RewardAmount: item.RewardAmount.Amount(),
			Status:       order.StatusCreated.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimItem handles POST /api/v1/items/{itemId}/claim.
func (s *Server) ClaimItem(ctx echo.Context, itemId openapi_types.UUID) error {
	var body servers.ClaimRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.TravelerId, kernel.RoleTraveler)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewClaimItemCommand(actor, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := s.claimItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToWire(item))
}

// ShipItem handles POST /api/v1/items/{itemId}/ship.
func (s *Server) ShipItem(ctx echo.Context, itemId openapi_types.UUID) error {
	var body servers.ShipRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.TravelerId, kernel.RoleTraveler)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewMarkItemShippedCommand(actor, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := s.markItemShippedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToWire(item))
}

// ConfirmDelivery handles POST /api/v1/items/{itemId}/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, itemId openapi_types.UUID) error {
	var body servers.ConfirmRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	role, err := kernel.RoleFromString(string(body.Role))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.ActorId, role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(actor, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToWire(item))
}

// UploadDeliveryProof handles POST /api/v1/items/{itemId}/proof.
func (s *Server) UploadDeliveryProof(ctx echo.Context, itemId openapi_types.UUID) error {
	var body servers.ProofRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.TravelerId, kernel.RoleTraveler)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUploadDeliveryProofCommand(actor, itemID, body.ProofUrl)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := s.uploadProofHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToWire(item))
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(ctx echo.Context, params servers.GetPaymentsParams) error {
	status, err := payment.StatusFromString(string(params.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetPaymentsByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	payments, err := s.getPaymentsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve payments")
	}

	response := make([]servers.Payment, len(payments))
	for i, p := range payments {
		response[i] = servers.Payment{
			Id:           p.ID.Bytes(),
			OrderId:      p.OrderID.Bytes(),
			ItemId:       p.ItemID.Bytes(),
			ClientId:     p.ClientID.Bytes(),
			TotalAmount:  p.TotalAmount.Amount(),
			MarkupAmount: p.MarkupAmount.Amount(),
			Status:       p.Status.String(),
		}
		if p.TravelerID != nil {
			traveler := p.TravelerID.Bytes()
			response[i].TravelerId = &traveler
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReleasePayment handles POST /api/v1/payments/{paymentId}/release.
func (s *Server) ReleasePayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	var body servers.ReleaseRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	paymentID, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	travelerID, err := kernel.UUIDFromBytes(body.TravelerId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.AdminId, kernel.RoleAdmin)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewReleasePaymentCommand(actor, paymentID, travelerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.releasePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, releaseResultToWire(result))
}

// GetDisputes handles GET /api/v1/disputes.
func (s *Server) GetDisputes(ctx echo.Context, params servers.GetDisputesParams) error {
	status, err := dispute.StatusFromString(string(params.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetDisputesByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	disputes, err := s.getDisputesByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve disputes")
	}

	response := make([]servers.Dispute, len(disputes))
	for i, d := range disputes {
		response[i] = servers.Dispute{
			Id:        d.ID.Bytes(),
			PaymentId: d.PaymentID.Bytes(),
			RaisedBy:  d.RaisedBy.Bytes(),
			Against:   d.Against.Bytes(),
			Reason:    d.Reason.String(),
			Status:    d.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OpenDispute handles POST /api/v1/disputes.
func (s *Server) OpenDispute(ctx echo.Context) error {
	var body servers.NewDispute
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role, err := kernel.RoleFromString(string(body.Role))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.ActorId, role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	paymentID, err := kernel.UUIDFromBytes(body.PaymentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	against, err := kernel.UUIDFromBytes(body.Against[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	reason, err := dispute.ReasonFromString(string(body.Reason))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	var evidence []string
	if body.Evidence != nil {
		evidence = *body.Evidence
	}

	cmd, err := commands.NewOpenDisputeCommand(actor, paymentID, against, reason, evidence)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	opened, err := s.openDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, disputeToWire(opened))
}

// ResolveDispute handles POST /api/v1/disputes/{disputeId}/resolve.
func (s *Server) ResolveDispute(ctx echo.Context, disputeId openapi_types.UUID) error {
	var body servers.ResolveRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.AdminId, kernel.RoleAdmin)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	action, err := dispute.ActionFromString(string(body.Action))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	var amountValue int64
	if body.Amount != nil {
		amountValue = *body.Amount
	}
	amount, err := kernel.NewMoney(amountValue)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewResolveDisputeCommand(actor, disputeID, action, amount, notes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	resolved, err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, disputeToWire(resolved))
}

// RejectDispute handles POST /api/v1/disputes/{disputeId}/reject.
func (s *Server) RejectDispute(ctx echo.Context, disputeId openapi_types.UUID) error {
	var body servers.RejectRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	actor, err := actorFromWire(body.AdminId, kernel.RoleAdmin)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRejectDisputeCommand(actor, disputeID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	rejected, err := s.rejectDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, disputeToWire(rejected))
}

func actorFromWire(id openapi_types.UUID, role kernel.Role) (kernel.ActorContext, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.ActorContext{}, err
	}
	return kernel.NewActorContext(actorID, role)
}

func itemSpecFromWire(wireItem servers.NewOrderItem) (commands.OrderItemSpec, error) {
	productID, err := kernel.UUIDFromBytes(wireItem.ProductId[:])
	if err != nil {
		return commands.OrderItemSpec{}, err
	}

	var state string
	if wireItem.Destination.State != nil {
		state = *wireItem.Destination.State
	}
	destination, err := kernel.NewDestination(wireItem.Destination.Country, state, wireItem.Destination.City)
	if err != nil {
		return commands.OrderItemSpec{}, err
	}

	productPrice, err := kernel.NewMoney(wireItem.ProductPrice)
	if err != nil {
		return commands.OrderItemSpec{}, err
	}

	rewardAmount, err := kernel.NewMoney(wireItem.RewardAmount)
	if err != nil {
		return commands.OrderItemSpec{}, err
	}

	return commands.OrderItemSpec{
		ProductID:    productID,
		Destination:  destination,
		DeliveryDate: wireItem.DeliveryDate.UTC(),
		ProductPrice: productPrice,
		RewardAmount: rewardAmount,
	}, nil
}

func destinationToWire(destination kernel.Destination) servers.Destination {
	wire := servers.Destination{
		Country: destination.Country(),
		City:    destination.City(),
	}
	if destination.State() != "" {
		state := destination.State()
		wire.State = &state
	}
	return wire
}

func itemToWire(item *order.Item) servers.Item {
	wire := servers.Item{
		Id:           item.ID().Bytes(),
		OrderId:      item.OrderID().Bytes(),
		ProductId:    item.ProductID().Bytes(),
		Destination:  destinationToWire(item.Destination()),
		DeliveryDate: item.DeliveryDate(),
		ProductPrice: item.ProductPrice().Amount(),
		RewardAmount: item.RewardAmount().Amount(),
		Status:       item.Status().String(),
	}
	if claimedBy := item.ClaimedBy(); claimedBy != nil {
		traveler := claimedBy.Bytes()
		wire.ClaimedBy = &traveler
	}
	if item.ProofURL() != "" {
		proofURL := item.ProofURL()
		wire.ProofUrl = &proofURL
	}
	return wire
}

func orderToWire(aggregate *order.Order) servers.Order {
	items := make([]servers.Item, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = itemToWire(item)
	}

	return servers.Order{
		Id:               aggregate.ID().Bytes(),
		ClientId:         aggregate.ClientID().Bytes(),
		Items:            items,
		TotalAmount:      aggregate.TotalAmount().Amount(),
		PaymentProcessed: aggregate.PaymentProcessed(),
	}
}

func paymentToWire(aggregate *payment.Payment) servers.Payment {
	wire := servers.Payment{
		Id:           aggregate.ID().Bytes(),
		OrderId:      aggregate.OrderID().Bytes(),
		ItemId:       aggregate.ItemID().Bytes(),
		ClientId:     aggregate.ClientID().Bytes(),
		TotalAmount:  aggregate.TotalAmount().Amount(),
		MarkupAmount: aggregate.MarkupAmount().Amount(),
		Status:       aggregate.Status().String(),
	}
	if travelerID := aggregate.TravelerID(); travelerID != nil {
		traveler := travelerID.Bytes()
		wire.TravelerId = &traveler
	}
	return wire
}

func releaseResultToWire(result commands.ReleasePaymentResult) servers.ReleaseResult {
	wire := servers.ReleaseResult{
		Payment:        paymentToWire(result.Payment),
		TravelerReward: result.TravelerReward.Amount(),
		CompanyFee:     result.CompanyFee.Amount(),
	}
	if result.PayoutConfirmation != "" {
		confirmation := result.PayoutConfirmation
		wire.PayoutConfirmation = &confirmation
	}
	return wire
}

func disputeToWire(aggregate *dispute.Dispute) servers.Dispute {
	wire := servers.Dispute{
		Id:        aggregate.ID().Bytes(),
		PaymentId: aggregate.PaymentID().Bytes(),
		RaisedBy:  aggregate.RaisedBy().Bytes(),
		Against:   aggregate.Against().Bytes(),
		Reason:    aggregate.Reason().String(),
		Status:    aggregate.Status().String(),
	}
	if len(aggregate.Evidence()) > 0 {
		evidence := aggregate.Evidence()
		wire.Evidence = &evidence
	}
	return wire
}

// domainErrorResponse maps domain errors to HTTP status codes: lost races and
// duplicate settlements are conflicts, unmet lifecycle preconditions are
// unprocessable, and invalid input is a bad request.
func domainErrorResponse(ctx echo.Context, err error) error {
	return errorResponse(ctx, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrPaymentAlreadyProcessed),
		errors.Is(err, payment.ErrAlreadyReleased),
		errors.Is(err, payment.ErrAlreadyRefunded),
		errors.Is(err, dispute.ErrDisputeAlreadyResolved),
		errors.Is(err, commands.ErrDisputeExists),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, commands.ErrDisputeBlocking),
		errors.Is(err, commands.ErrItemNotCompleted),
		errors.Is(err, commands.ErrPaymentIsSettled),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotClaimant),
		errors.Is(err, payment.ErrNotInEscrow),
		errors.Is(err, payment.ErrNotPending),
		errors.Is(err, payment.ErrTravelerMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

var _ servers.ServerInterface = (*Server)(nil)
