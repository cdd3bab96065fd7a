package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dinebot/internal/core/application/usecases/commands"
	"dinebot/internal/core/application/usecases/queries"
	"dinebot/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recognized intent display names. These are exact strings configured in the
// NLU frontend; anything else falls through to the default response.
const (
	IntentAddToOrder      = "order.add - context: ongoing-order"
	IntentRemoveFromOrder = "order.remove - context: ongoing-order"
	IntentCompleteOrder   = "order.complete - context: ongoing-order"
	IntentTrackOrder      = "track.order - context: ongoing-tracking"
)

// MsgInvalidIntent is the default response for unrecognized intents.
const MsgInvalidIntent = "Invalid intent received"

// Server handles webhook calls from the NLU frontend.
// It coordinates between the HTTP envelope and application use cases.
//
// Every reachable path answers with HTTP 200 and a fulfillment text; failures
// surface to the user as apologetic text, never as transport-level errors.
type Server struct {
	// Command handlers
	addItemsHandler      commands.AddItemsCommandHandler
	removeItemsHandler   commands.RemoveItemsCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new webhook server with the required command and query handlers.
func NewServer(
	addItemsHandler commands.AddItemsCommandHandler,
	removeItemsHandler commands.RemoveItemsCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addItemsHandler:      addItemsHandler,
		removeItemsHandler:   removeItemsHandler,
		completeOrderHandler: completeOrderHandler,
		trackOrderHandler:    trackOrderHandler,
		logger:               logger.With("component", "http_server"),
	}
}

// Register wires the server's routes into the Echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/", s.HandleWebhook)
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Health handles GET /health - reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// HandleWebhook handles POST / - dispatches one NLU webhook call to the
// matching order operation.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	// Even an unparseable body gets the normal reply envelope; the frontend
	// reads fulfillment text, not status codes.
	var request WebhookRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusOK, WebhookResponse{
			FulfillmentText: "Invalid request body",
		})
	}

	reqCtx := ctx.Request().Context()
	intent := request.QueryResult.Intent.DisplayName
	parameters := request.QueryResult.Parameters
	sessionKey, hasSession := sessionFromContexts(request.QueryResult.OutputContexts)

	label := intent
	var text string
	switch intent {
	case IntentAddToOrder:
		text = s.addToOrder(reqCtx, parameters, sessionKey, hasSession)
	case IntentRemoveFromOrder:
		text = s.removeFromOrder(reqCtx, parameters, sessionKey, hasSession)
	case IntentCompleteOrder:
		text = s.completeOrder(reqCtx, sessionKey, hasSession)
	case IntentTrackOrder:
		text = s.trackOrder(reqCtx, parameters)
	default:
		label = "unknown"
		text = MsgInvalidIntent
	}
	intentsTotal.WithLabelValues(label).Inc()

	return ctx.JSON(http.StatusOK, WebhookResponse{FulfillmentText: text})
}

func (s *Server) addToOrder(
	ctx context.Context, parameters map[string]any, sessionKey kernel.SessionKey, hasSession bool,
) string {
	if !hasSession {
		return commands.MsgOrderNotFound
	}

	cmd, err := commands.NewAddItemsCommand(
		sessionKey,
		stringListParam(parameters, "food-item"),
		numberListParam(parameters, "number"),
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "Building add command failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}

	text, err := s.addItemsHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Add operation failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}
	return text
}

func (s *Server) removeFromOrder(
	ctx context.Context, parameters map[string]any, sessionKey kernel.SessionKey, hasSession bool,
) string {
	if !hasSession {
		return commands.MsgOrderNotFound
	}

	cmd, err := commands.NewRemoveItemsCommand(sessionKey, stringListParam(parameters, "food-item"))
	if err != nil {
		s.logger.ErrorContext(ctx, "Building remove command failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}

	text, err := s.removeItemsHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Remove operation failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}
	return text
}

func (s *Server) completeOrder(ctx context.Context, sessionKey kernel.SessionKey, hasSession bool) string {
	if !hasSession {
		return commands.MsgOrderNotFound
	}

	cmd, err := commands.NewCompleteOrderCommand(sessionKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "Building complete command failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}

	text, err := s.completeOrderHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Complete operation failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}
	return text
}

func (s *Server) trackOrder(ctx context.Context, parameters map[string]any) string {
	orderID, err := orderIDParam(parameters)
	switch {
	case errors.Is(err, errOrderIDAbsent):
		return "Order ID not provided."
	case errors.Is(err, errOrderIDInvalid):
		return "Invalid Order ID provided."
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Building track query failed", "error", err)
		return commands.MsgOrderProcessingFailed
	}

	response, err := s.trackOrderHandler.Handle(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "Track operation failed", "order_id", orderID, "error", err)
		return commands.MsgOrderProcessingFailed
	}

	if !response.Found {
		return fmt.Sprintf("No order found with Order ID: %d", response.OrderID)
	}
	return fmt.Sprintf("Order status for Order ID %d: %s", response.OrderID, response.Status)
}

// sessionFromContexts derives the session key from the first conversation
// context. An empty context list, or a context name without an embedded
// session token, counts as an absent session.
func sessionFromContexts(contexts []OutputContext) (kernel.SessionKey, bool) {
	if len(contexts) == 0 {
		return kernel.SessionKey{}, false
	}

	sessionKey, err := kernel.SessionKeyFromContextName(contexts[0].Name)
	if err != nil {
		return kernel.SessionKey{}, false
	}
	return sessionKey, true
}
