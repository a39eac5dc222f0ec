package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	ReservationUsecase contracts.ReservationUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, reservationUsecase contracts.ReservationUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	requesterID, ok := utils.RequesterIDFromContext(r.Context())
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requesterID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequesterID(nil))
		return
	}

	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRequesterIDKey, requesterID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID))

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	outcome, err := ctrl.ReservationUsecase.Reserve(ctx, requesterID, request.ProviderID, request.SlotDate, request.SlotTime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, reservationError(err))
		return
	}
	if !outcome.Booked() {
		ctrl.Log.Info("AppointmentController.CreateAppointment rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOutcomeKey, outcome.Label()))
		utils.BuildErrorResponse(ctrl.Log, w, rejectionError(outcome.Rejection))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, outcome.Appointment.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, outcome.Appointment.ConvertIntoResponse())
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	requesterID, ok := utils.RequesterIDFromContext(r.Context())
	if !ok {
		ctrl.Log.Error("AppointmentController.FindAll requesterID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequesterID(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	appointments, err := ctrl.ReservationUsecase.ListForRequester(ctx, requesterID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error calling ReservationUsecase.ListForRequester",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointment.ConvertIntoResponse())
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if ctrl.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), ctrl.RequestTimeout)
}

func rejectionError(reason models.RejectionReason) error {
	switch reason {
	case models.RejectionProviderNotFound:
		return exceptions.ErrProviderNotFound(nil)
	case models.RejectionRequesterNotFound:
		return exceptions.ErrRequesterNotFound(nil)
	case models.RejectionProviderUnavailable:
		return exceptions.ErrProviderUnavailable(nil)
	default:
		return exceptions.ErrSlotTaken(nil)
	}
}

func reservationError(err error) error {
	switch {
	case errors.Is(err, exceptions.ErrReservationBusy):
		return exceptions.ErrReservationBusyResponse(err)
	case errors.Is(err, exceptions.ErrPersistenceFailure):
		return exceptions.ErrPersistenceFailureResponse(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return exceptions.ErrServerDeadlineExceeded(err)
	default:
		return err
	}
}
