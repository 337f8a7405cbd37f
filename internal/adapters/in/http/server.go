package http

import (
	"context"
	"log/slog"
	"net/http"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/model/requester"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler is one command or query handler of the application layer.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// HandlerFunc adapts handlers that only return an error.
type HandlerFunc[In any] func(ctx context.Context, in In) error

func (f HandlerFunc[In]) Handle(ctx context.Context, in In) (struct{}, error) {
	return struct{}{}, f(ctx, in)
}

// Handlers groups everything the server dispatches to.
type Handlers struct {
	SubmitOrder       Handler[commands.SubmitOrderCommand, int64]
	SetFee            Handler[commands.SetFeeCommand, struct{}]
	AcceptOrder       Handler[commands.AcceptOrderCommand, commands.AcceptResult]
	RejectOrder       Handler[commands.RejectOrderCommand, struct{}]
	CompleteOrder     Handler[commands.CompleteOrderCommand, struct{}]
	TopUpBalance      Handler[commands.TopUpBalanceCommand, int64]
	DebitBalance      Handler[commands.DebitBalanceCommand, int64]
	SubmitProof       Handler[commands.SubmitProofCommand, kernel.UUID]
	ReviewProof       Handler[commands.ReviewProofCommand, commands.ReviewResult]
	RegisterCarrier   Handler[commands.RegisterCarrierCommand, int64]
	RegisterRequester Handler[commands.RegisterRequesterCommand, struct{}]
	SetStatus         Handler[commands.SetStatusCommand, struct{}]
	Broadcast         Handler[commands.BroadcastCommand, fanout.Report]

	GetOrder          Handler[queries.GetOrderQuery, queries.OrderView]
	ListOrders        Handler[queries.ListOrdersQuery, []queries.OrderView]
	GetCarrier        Handler[queries.GetCarrierQuery, queries.CarrierView]
	ListCarriers      Handler[queries.ListAccountsQuery, []queries.CarrierView]
	ListRequesters    Handler[queries.ListAccountsQuery, []queries.RequesterView]
	ListPendingProofs Handler[queries.ListPendingProofsQuery, []queries.ProofView]
}

// Server implements ServerInterface. Each method builds a command or query,
// runs it and renders the result; failures go to ErrorHandler.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(deref(params.Status), deref(params.Limit))
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

// SubmitOrder handles POST /api/v1/orders. The actor is the submitter.
func (s *Server) SubmitOrder(ctx echo.Context, actorID int64) error {
	var body NewOrder
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitOrderCommand(order.Draft{
		RequesterID: actorID,
		CreatorRole: order.CreatorRole(body.CreatorRole),
		Origin:      body.Origin,
		Destination: body.Destination,
		Cargo:       body.Cargo,
		Weight:      body.Weight,
		Vehicle:     body.Vehicle,
		PickupDate:  body.PickupDate,
		Username:    body.Username,
		Phone:       body.Phone,
	})
	if err != nil {
		return err
	}

	id, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// SetFee handles POST /api/v1/orders/{orderId}/fee.
func (s *Server) SetFee(ctx echo.Context, orderID int64, actorID int64) error {
	var body Amount
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetFeeCommand(orderID, body.Amount, actorID)
	if err != nil {
		return err
	}
	if _, err := s.h.SetFee.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept for the acting carrier.
func (s *Server) AcceptOrder(ctx echo.Context, orderID int64, actorID int64) error {
	cmd, err := commands.NewAcceptOrderCommand(orderID, actorID)
	if err != nil {
		return err
	}

	res, err := s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Acceptance{OrderID: res.OrderID, Fee: res.Fee, Balance: res.Balance})
}

func (s *Server) RejectOrder(ctx echo.Context, orderID int64, actorID int64) error {
	cmd, err := commands.NewRejectOrderCommand(orderID, actorID)
	if err != nil {
		return err
	}
	if _, err := s.h.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) CompleteOrder(ctx echo.Context, orderID int64, actorID int64) error {
	cmd, err := commands.NewCompleteOrderCommand(orderID, actorID)
	if err != nil {
		return err
	}
	if _, err := s.h.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ListCarriers(ctx echo.Context, params PageParams) error {
	query, err := queries.NewListAccountsQuery(deref(params.Limit), deref(params.Offset))
	if err != nil {
		return err
	}

	carriers, err := s.h.ListCarriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(carriers, toCarrier))
}

// RegisterCarrier handles POST /api/v1/carriers. The actor becomes the carrier id.
func (s *Server) RegisterCarrier(ctx echo.Context, actorID int64) error {
	var body NewCarrier
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCarrierCommand(carrier.Profile{
		ID:       actorID,
		FullName: body.FullName,
		Vehicle:  body.Vehicle,
		Username: body.Username,
		Phone:    body.Phone,
	})
	if err != nil {
		return err
	}

	balance, err := s.h.RegisterCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Balance{Balance: balance})
}

func (s *Server) GetCarrier(ctx echo.Context, carrierID int64) error {
	query, err := queries.NewGetCarrierQuery(carrierID)
	if err != nil {
		return err
	}

	view, err := s.h.GetCarrier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCarrier(view))
}

// CreditBalance handles POST /api/v1/carriers/{carrierId}/credit.
func (s *Server) CreditBalance(ctx echo.Context, carrierID int64, actorID int64) error {
	var body Amount
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewTopUpBalanceCommand(carrierID, body.Amount, actorID)
	if err != nil {
		return err
	}

	balance, err := s.h.TopUpBalance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Balance{Balance: balance})
}

// DebitBalance handles POST /api/v1/carriers/{carrierId}/debit.
func (s *Server) DebitBalance(ctx echo.Context, carrierID int64, actorID int64) error {
	var body Amount
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewDebitBalanceCommand(carrierID, body.Amount, actorID)
	if err != nil {
		return err
	}

	balance, err := s.h.DebitBalance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Balance{Balance: balance})
}

func (s *Server) SetCarrierStatus(ctx echo.Context, carrierID int64, actorID int64) error {
	return s.setStatus(ctx, commands.Carriers, carrierID, actorID)
}

func (s *Server) ListRequesters(ctx echo.Context, params PageParams) error {
	query, err := queries.NewListAccountsQuery(deref(params.Limit), deref(params.Offset))
	if err != nil {
		return err
	}

	requesters, err := s.h.ListRequesters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(requesters, toRequester))
}

func (s *Server) RegisterRequester(ctx echo.Context, actorID int64) error {
	var body NewRequester
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterRequesterCommand(requester.Profile{
		ID:       actorID,
		FullName: body.FullName,
		Username: body.Username,
		Phone:    body.Phone,
	})
	if err != nil {
		return err
	}
	if _, err := s.h.RegisterRequester.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) SetRequesterStatus(ctx echo.Context, requesterID int64, actorID int64) error {
	return s.setStatus(ctx, commands.Requesters, requesterID, actorID)
}

// SubmitProof handles POST /api/v1/proofs for the acting carrier.
func (s *Server) SubmitProof(ctx echo.Context, actorID int64) error {
	var body NewProof
	if err := bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitProofCommand(actorID, body.Artifact)
	if err != nil {
		return err
	}

	id, err := s.h.SubmitProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ProofCreated{ID: id.String()})
}

func (s *Server) ListPendingProofs(ctx echo.Context, params PageParams) error {
	query := queries.NewListPendingProofsQuery(deref(params.Limit))

	proofs, err := s.h.ListPendingProofs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(proofs, toProof))
}

// ReviewProof handles POST /api/v1/proofs/{proofId}/review.
func (s *Server) ReviewProof(ctx echo.Context, proofID string, actorID int64) error {
	var body ReviewRequest
	if err := bind(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(proofID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("proof id", err)
	}
	decision, err := commands.ParseDecision(body.Decision)
	if err != nil {
		return err
	}
	cmd, err := commands.NewReviewProofCommand(id, decision, body.Amount, actorID)
	if err != nil {
		return err
	}

	res, err := s.h.ReviewProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Review{
		CarrierID: res.CarrierID,
		Status:    res.Status.String(),
		Amount:    res.Amount,
		Balance:   res.Balance,
	})
}

// Broadcast handles POST /api/v1/broadcasts.
func (s *Server) Broadcast(ctx echo.Context, actorID int64) error {
	var body BroadcastRequest
	if err := bind(ctx, &body); err != nil {
		return err
	}

	audience, err := commands.ParseParty(body.Audience)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBroadcastCommand(audience, body.Text, actorID)
	if err != nil {
		return err
	}

	report, err := s.h.Broadcast.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, BroadcastReport{Delivered: report.Delivered, Failed: report.Failed})
}

func (s *Server) setStatus(ctx echo.Context, party commands.Party, accountID, actorID int64) error {
	var body AccountStatus
	if err := bind(ctx, &body); err != nil {
		return err
	}

	status, err := kernel.ParseAccountStatus(body.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetStatusCommand(party, accountID, status, actorID)
	if err != nil {
		return err
	}
	if _, err := s.h.SetStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
