package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const actorHeader = "X-Actor-ID"

// ServerInterface lists the operations of openapi.yaml with their bound
// path and header parameters.
type ServerInterface interface {
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	SubmitOrder(ctx echo.Context, actorID int64) error
	GetOrder(ctx echo.Context, orderID int64) error
	SetFee(ctx echo.Context, orderID int64, actorID int64) error
	AcceptOrder(ctx echo.Context, orderID int64, actorID int64) error
	RejectOrder(ctx echo.Context, orderID int64, actorID int64) error
	CompleteOrder(ctx echo.Context, orderID int64, actorID int64) error

	ListCarriers(ctx echo.Context, params PageParams) error
	RegisterCarrier(ctx echo.Context, actorID int64) error
	GetCarrier(ctx echo.Context, carrierID int64) error
	CreditBalance(ctx echo.Context, carrierID int64, actorID int64) error
	DebitBalance(ctx echo.Context, carrierID int64, actorID int64) error
	SetCarrierStatus(ctx echo.Context, carrierID int64, actorID int64) error

	ListRequesters(ctx echo.Context, params PageParams) error
	RegisterRequester(ctx echo.Context, actorID int64) error
	SetRequesterStatus(ctx echo.Context, requesterID int64, actorID int64) error

	SubmitProof(ctx echo.Context, actorID int64) error
	ListPendingProofs(ctx echo.Context, params PageParams) error
	ReviewProof(ctx echo.Context, proofID string, actorID int64) error

	Broadcast(ctx echo.Context, actorID int64) error
}

type ListOrdersParams struct {
	Status *string
	Limit  *int
}

type PageParams struct {
	Limit  *int
	Offset *int
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SubmitOrder(ctx, actorID)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) SetFee(ctx echo.Context) error {
	return w.withOrder(ctx, w.Handler.SetFee)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	return w.withOrder(ctx, w.Handler.AcceptOrder)
}

func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	return w.withOrder(ctx, w.Handler.RejectOrder)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	return w.withOrder(ctx, w.Handler.CompleteOrder)
}

func (w *ServerInterfaceWrapper) ListCarriers(ctx echo.Context) error {
	params, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListCarriers(ctx, params)
}

func (w *ServerInterfaceWrapper) RegisterCarrier(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RegisterCarrier(ctx, actorID)
}

func (w *ServerInterfaceWrapper) GetCarrier(ctx echo.Context) error {
	carrierID, err := bindPathID(ctx, "carrierId")
	if err != nil {
		return err
	}
	return w.Handler.GetCarrier(ctx, carrierID)
}

func (w *ServerInterfaceWrapper) CreditBalance(ctx echo.Context) error {
	return w.withAccount(ctx, "carrierId", w.Handler.CreditBalance)
}

func (w *ServerInterfaceWrapper) DebitBalance(ctx echo.Context) error {
	return w.withAccount(ctx, "carrierId", w.Handler.DebitBalance)
}

func (w *ServerInterfaceWrapper) SetCarrierStatus(ctx echo.Context) error {
	return w.withAccount(ctx, "carrierId", w.Handler.SetCarrierStatus)
}

func (w *ServerInterfaceWrapper) ListRequesters(ctx echo.Context) error {
	params, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListRequesters(ctx, params)
}

func (w *ServerInterfaceWrapper) RegisterRequester(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RegisterRequester(ctx, actorID)
}

func (w *ServerInterfaceWrapper) SetRequesterStatus(ctx echo.Context) error {
	return w.withAccount(ctx, "requesterId", w.Handler.SetRequesterStatus)
}

func (w *ServerInterfaceWrapper) SubmitProof(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SubmitProof(ctx, actorID)
}

func (w *ServerInterfaceWrapper) ListPendingProofs(ctx echo.Context) error {
	params, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListPendingProofs(ctx, params)
}

func (w *ServerInterfaceWrapper) ReviewProof(ctx echo.Context) error {
	var proofID string
	if err := runtime.BindStyledParameterWithOptions("simple", "proofId", ctx.Param("proofId"), &proofID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter proofId: %s", err))
	}
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReviewProof(ctx, proofID, actorID)
}

func (w *ServerInterfaceWrapper) Broadcast(ctx echo.Context) error {
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Broadcast(ctx, actorID)
}

func (w *ServerInterfaceWrapper) withOrder(ctx echo.Context, next func(echo.Context, int64, int64) error) error {
	return w.withAccount(ctx, "orderId", next)
}

func (w *ServerInterfaceWrapper) withAccount(ctx echo.Context, param string, next func(echo.Context, int64, int64) error) error {
	id, err := bindPathID(ctx, param)
	if err != nil {
		return err
	}
	actorID, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return next(ctx, id, actorID)
}

func bindPathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	if err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindActor(ctx echo.Context) (int64, error) {
	values, found := ctx.Request().Header[http.CanonicalHeaderKey(actorHeader)]
	if !found {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Header parameter "+actorHeader+" is required, but not found")
	}
	if n := len(values); n != 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for %s, got %d", actorHeader, n))
	}

	var actorID int64
	if err := runtime.BindStyledParameterWithOptions("simple", actorHeader, values[0], &actorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Required: true}); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", actorHeader, err))
	}
	return actorID, nil
}

func bindPage(ctx echo.Context) (PageParams, error) {
	var params PageParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}
	return params, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", w.ListOrders)
	router.POST(baseURL+"/orders", w.SubmitOrder)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.POST(baseURL+"/orders/:orderId/fee", w.SetFee)
	router.POST(baseURL+"/orders/:orderId/accept", w.AcceptOrder)
	router.POST(baseURL+"/orders/:orderId/reject", w.RejectOrder)
	router.POST(baseURL+"/orders/:orderId/complete", w.CompleteOrder)

	router.GET(baseURL+"/carriers", w.ListCarriers)
	router.POST(baseURL+"/carriers", w.RegisterCarrier)
	router.GET(baseURL+"/carriers/:carrierId", w.GetCarrier)
	router.POST(baseURL+"/carriers/:carrierId/credit", w.CreditBalance)
	router.POST(baseURL+"/carriers/:carrierId/debit", w.DebitBalance)
	router.POST(baseURL+"/carriers/:carrierId/status", w.SetCarrierStatus)

	router.GET(baseURL+"/requesters", w.ListRequesters)
	router.POST(baseURL+"/requesters", w.RegisterRequester)
	router.POST(baseURL+"/requesters/:requesterId/status", w.SetRequesterStatus)

	router.POST(baseURL+"/proofs", w.SubmitProof)
	router.GET(baseURL+"/proofs/pending", w.ListPendingProofs)
	router.POST(baseURL+"/proofs/:proofId/review", w.ReviewProof)

	router.POST(baseURL+"/broadcasts", w.Broadcast)
}
