// Package http is the REST adapter: echo routes, bearer-token auth, and the
// mapping from application errors to status codes. Handlers translate JSON
// bodies into commands and queries; all business rules live below.
package http

import (
	"net/http"
	"time"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/application/usecases/queries"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateParcel          commands.CreateParcelCommandHandler
	UpdateParcel          commands.UpdateParcelCommandHandler
	UpdateParcelStatus    commands.UpdateParcelStatusCommandHandler
	DeleteParcel          commands.DeleteParcelCommandHandler
	CreatePickupRequest   commands.CreatePickupRequestCommandHandler
	AddPickupParcel       commands.AddPickupParcelCommandHandler
	ApprovePickupRequest  commands.ApprovePickupRequestCommandHandler
	RejectPickupRequest   commands.RejectPickupRequestCommandHandler
	CancelPickupRequest   commands.CancelPickupRequestCommandHandler
	CompletePickupRequest commands.CompletePickupRequestCommandHandler
	CreateCourier         commands.CreateCourierCommandHandler
	RegisterUser          commands.RegisterUserCommandHandler
	Login                 commands.LoginCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	TrackParcel             queries.TrackParcelQueryHandler
	ListParcels             queries.ListParcelsQueryHandler
	GetParcel               queries.GetParcelQueryHandler
	GetTrackingUpdates      queries.GetTrackingUpdatesQueryHandler
	ListPickupRequests      queries.ListPickupRequestsQueryHandler
	GetPickupRequest        queries.GetPickupRequestQueryHandler
	GetPickupRequestParcels queries.GetPickupRequestParcelsQueryHandler
	ListAvailableParcels    queries.ListAvailableParcelsQueryHandler
	ListCouriers            queries.ListCouriersQueryHandler
	GetPlatformStats        queries.GetPlatformStatsQueryHandler
	GetMerchantStats        queries.GetMerchantStatsQueryHandler
	GetAccount              queries.GetAccountQueryHandler
}

// Server wires HTTP requests to application use cases.
type Server struct {
	cmd CommandHandlers
	qry QueryHandlers
}

// NewServer creates the REST server.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{cmd: commandHandlers, qry: queryHandlers}
}

// RegisterRoutes mounts all routes on the echo instance. Routes split into
// three rings: public, bearer-authenticated, and admin-only.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier TokenVerifier) {
	e.GET("/health", s.Health)
	e.GET("/parcels/tracking/:trackingID", s.TrackParcel)
	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)

	api := e.Group("", AuthMiddleware(verifier))
	api.GET("/auth/me", s.Me)
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/:id", s.GetParcel)
	api.PUT("/parcels/:id", s.UpdateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.PUT("/parcels/:id/status", s.UpdateParcelStatus)
	api.GET("/parcels/:id/tracking-updates", s.GetTrackingUpdates)
	api.POST("/pickup-requests", s.CreatePickupRequest)
	api.GET("/pickup-requests", s.ListPickupRequests)
	api.GET("/pickup-requests/:id", s.GetPickupRequest)
	api.POST("/pickup-requests/:id/cancel", s.CancelPickupRequest)
	api.POST("/pickup-requests/:id/parcels", s.AddPickupParcel)
	api.GET("/pickup-requests/:id/parcels", s.GetPickupRequestParcels)
	api.GET("/merchant/stats", s.GetMerchantStats)
	api.GET("/merchants/parcels/available", s.ListAvailableParcels)

	admin := api.Group("", RequireAdmin())
	admin.PUT("/pickup-requests/:id", s.DecidePickupRequest)
	admin.GET("/admin/pickup-requests/pending", s.ListPendingPickupRequests)
	admin.PATCH("/admin/pickup-requests/:id/approve", s.ApprovePickupRequest)
	admin.PATCH("/admin/pickup-requests/:id/reject", s.RejectPickupRequest)
	admin.GET("/admin/couriers", s.ListCouriers)
	admin.POST("/admin/couriers", s.CreateCourier)
	admin.GET("/admin/stats", s.GetPlatformStats)
}

func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// parsePickupDate accepts a date-only value or a full timestamp.
func parsePickupDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("pickupDate", err)
	}
	return t, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TrackParcel handles GET /parcels/tracking/:trackingID, the public
// tracking endpoint. No authentication, limited projection.
func (s *Server) TrackParcel(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.qry.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackParcelResponse{
		TrackingID:    result.TrackingID,
		Status:        result.Status,
		RecipientName: result.RecipientName,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	})
}

// Register handles POST /auth/register. New accounts are always merchants;
// admins are provisioned out of band.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), req.Email, req.Password, req.FullName,
		req.BusinessName, req.Phone, req.Address,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	user, err := s.cmd.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	token, user, err := s.cmd.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse{Token: token, User: newUserResponse(user)})
}

// Me handles GET /auth/me.
func (s *Server) Me(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAccountQuery(p.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.qry.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		ID:           profile.ID.String(),
		Email:        profile.Email,
		FullName:     profile.FullName,
		Role:         profile.Role,
		Status:       profile.Status,
		BusinessName: profile.BusinessName,
		Phone:        profile.Phone,
		Address:      profile.Address,
		CreatedAt:    profile.CreatedAt,
	})
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), p.UserID,
		req.RecipientName, req.RecipientPhone, req.DeliveryAddress,
		req.PackageDescription, req.WeightKg, req.Dimensions,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.cmd.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newParcelResponse(created))
}

// ListParcels handles GET /parcels with optional status and search filters.
func (s *Server) ListParcels(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListParcelsQuery(
		p.UserID, p.Role,
		ctx.QueryParam("status"), ctx.QueryParam("search"),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]parcelResponse, len(rows))
	for i, row := range rows {
		response[i] = newParcelResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(parcelID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.qry.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newParcelResponseFromRow(row))
}

// UpdateParcel handles PUT /parcels/:id. Recipient details and package
// metadata only; status changes go through PUT /parcels/:id/status.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID, p.UserID, p.Role,
		req.RecipientName, req.RecipientPhone, req.DeliveryAddress,
		req.PackageDescription, req.WeightKg, req.Dimensions,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.cmd.UpdateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newParcelResponse(updated))
}

// DeleteParcel handles DELETE /parcels/:id. Only pending parcels can go.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles PUT /parcels/:id/status. Merchants may only
// cancel their own pending parcels; everything else is an admin move.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateParcelStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	nextStatus, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, p.UserID, p.Role, nextStatus, req.Notes, req.Location,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrackingUpdates handles GET /parcels/:id/tracking-updates.
func (s *Server) GetTrackingUpdates(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingUpdatesQuery(parcelID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.GetTrackingUpdates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]trackingUpdateResponse, len(rows))
	for i, row := range rows {
		response[i] = trackingUpdateResponse{
			ID:        row.ID.String(),
			Status:    row.Status,
			Location:  row.Location,
			Notes:     row.Notes,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePickupRequest handles POST /pickup-requests.
func (s *Server) CreatePickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createPickupRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	pickupDate, err := parsePickupDate(req.PickupDate)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		parcelID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelIds", parseErr))
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	cmd, err := commands.NewCreatePickupRequestCommand(
		kernel.NewUUID(), p.UserID,
		req.PickupAddress, pickupDate, req.TimeSlot, req.SpecialInstructions,
		parcelIDs,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.cmd.CreatePickupRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newPickupRequestResponse(created))
}

// ListPickupRequests handles GET /pickup-requests. Merchants see their own,
// admins see all; ?pending=true narrows to undecided ones.
func (s *Server) ListPickupRequests(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	pendingOnly := ctx.QueryParam("pending") == "true"
	query, err := queries.NewListPickupRequestsQuery(p.UserID, p.Role, pendingOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.ListPickupRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]pickupRequestResponse, len(rows))
	for i, row := range rows {
		response[i] = newPickupRequestResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupRequest handles GET /pickup-requests/:id.
func (s *Server) GetPickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPickupRequestQuery(requestID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.qry.GetPickupRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPickupRequestResponseFromRow(row))
}

// CancelPickupRequest handles POST /pickup-requests/:id/cancel.
func (s *Server) CancelPickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelPickupRequestCommand(requestID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.CancelPickupRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPickupParcel handles POST /pickup-requests/:id/parcels.
func (s *Server) AddPickupParcel(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req addPickupParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelId", err))
	}

	cmd, err := commands.NewAddPickupParcelCommand(requestID, p.UserID, parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.AddPickupParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPickupRequestParcels handles GET /pickup-requests/:id/parcels.
func (s *Server) GetPickupRequestParcels(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPickupRequestParcelsQuery(requestID, p.UserID, p.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.GetPickupRequestParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]parcelResponse, len(rows))
	for i, row := range rows {
		response[i] = newParcelResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMerchantStats handles GET /merchant/stats.
func (s *Server) GetMerchantStats(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMerchantStatsQuery(p.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.qry.GetMerchantStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, merchantStatsResponse{
		TotalParcels:       stats.TotalParcels,
		ParcelsByStatus:    stats.ParcelsByStatus,
		OpenPickupRequests: stats.OpenPickupRequests,
	})
}

// ListAvailableParcels handles GET /merchants/parcels/available: pending
// parcels not already booked into an open pickup request.
func (s *Server) ListAvailableParcels(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListAvailableParcelsQuery(p.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.ListAvailableParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]parcelResponse, len(rows))
	for i, row := range rows {
		response[i] = newParcelResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListPendingPickupRequests handles GET /admin/pickup-requests/pending.
func (s *Server) ListPendingPickupRequests(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListPickupRequestsQuery(p.UserID, p.Role, true)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.qry.ListPickupRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]pickupRequestResponse, len(rows))
	for i, row := range rows {
		response[i] = newPickupRequestResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApprovePickupRequest handles PATCH /admin/pickup-requests/:id/approve.
func (s *Server) ApprovePickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvePickupRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", err))
	}

	cmd, err := commands.NewApprovePickupRequestCommand(requestID, courierID, p.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.ApprovePickupRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectPickupRequest handles PATCH /admin/pickup-requests/:id/reject.
func (s *Server) RejectPickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req rejectPickupRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRejectPickupRequestCommand(requestID, p.UserID, req.AdminNotes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cmd.RejectPickupRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DecidePickupRequest handles PUT /pickup-requests/:id, the generic admin
// decision route. The status field picks the workflow action; there is no
// way to bypass the state machine through it.
func (s *Server) DecidePickupRequest(ctx echo.Context) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID, err := uuidParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req decidePickupRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := pickup.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	switch status {
	case pickup.StatusApproved:
		courierID, parseErr := kernel.UUIDFromString(req.CourierID)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", parseErr))
		}
		cmd, cmdErr := commands.NewApprovePickupRequestCommand(requestID, courierID, p.UserID)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.cmd.ApprovePickupRequest.Handle(ctx.Request().Context(), cmd)

	case pickup.StatusRejected:
		cmd, cmdErr := commands.NewRejectPickupRequestCommand(requestID, p.UserID, req.AdminNotes)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.cmd.RejectPickupRequest.Handle(ctx.Request().Context(), cmd)

	case pickup.StatusCompleted:
		cmd, cmdErr := commands.NewCompletePickupRequestCommand(requestID, p.UserID)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.cmd.CompletePickupRequest.Handle(ctx.Request().Context(), cmd)

	case pickup.StatusCancelled:
		cmd, cmdErr := commands.NewCancelPickupRequestCommand(requestID, p.UserID, p.Role)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.cmd.CancelPickupRequest.Handle(ctx.Request().Context(), cmd)

	default:
		return writeError(ctx, errs.NewValueIsInvalidError("status"))
	}

	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListCouriers handles GET /admin/couriers, optionally ?active=true.
func (s *Server) ListCouriers(ctx echo.Context) error {
	query := queries.NewListCouriersQuery(ctx.QueryParam("active") == "true")

	rows, err := s.qry.ListCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]courierResponse, len(rows))
	for i, row := range rows {
		response[i] = newCourierResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /admin/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req createCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateCourierCommand(
		kernel.NewUUID(), req.Name, req.Phone,
		req.VehicleType, req.VehicleNumber, req.CoverageArea,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.cmd.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newCourierResponse(created))
}

// GetPlatformStats handles GET /admin/stats.
func (s *Server) GetPlatformStats(ctx echo.Context) error {
	query := queries.NewGetPlatformStatsQuery()

	stats, err := s.qry.GetPlatformStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, platformStatsResponse{
		TotalParcels:          stats.TotalParcels,
		ParcelsByStatus:       stats.ParcelsByStatus,
		TotalMerchants:        stats.TotalMerchants,
		ActiveCouriers:        stats.ActiveCouriers,
		PendingPickupRequests: stats.PendingPickupRequests,
	})
}
