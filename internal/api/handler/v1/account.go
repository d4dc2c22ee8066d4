package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/request"
	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/service"
)

type LedgerService interface {
	GetBalance(ctx context.Context, studentID uuid.UUID) (int, error)
	GetTransactions(ctx context.Context, studentID uuid.UUID) ([]domain.StudentTransaction, error)
	RecordManualTransaction(ctx context.Context, studentID uuid.UUID, amount int, withdraw bool, comment *string, profileID uuid.UUID) (domain.StudentTransaction, error)
}

// AccountHandler exposes the student point account. It resolves students
// through the student service so ledger reads stay inside the space.
type AccountHandler struct {
	svc        LedgerService
	studentSvc StudentService
	spaceSvc   SpaceAccessVerifier
}

func NewAccountHandler(svc LedgerService, studentSvc StudentService, spaceSvc SpaceAccessVerifier) *AccountHandler {
	return &AccountHandler{
		svc:        svc,
		studentSvc: studentSvc,
		spaceSvc:   spaceSvc,
	}
}

func (h *AccountHandler) resolveStudent(ctx *gin.Context, spaceID, studentID uuid.UUID) *response.Err {
	student, err := h.studentSvc.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return response.ErrNotFound("student", "id", studentID)
		}

		err = fmt.Errorf("v1.resolveStudent -> h.studentSvc.GetStudent -> %w", err)
		return response.ErrInternalServerError(err)
	}

	if student.SpaceID != spaceID {
		return response.ErrNotFound("student", "id", studentID)
	}

	return nil
}

// HandleGetBalance godoc
// @Summary      Get a student's point balance
// @Tags         accounts
// @Produce      json
// @Param        spaceID    path      string  true  "space ID"
// @Param        studentID  path      string  true  "student ID"
// @Success      200        {object}  response.BalanceResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/students/{studentID}/balance [get]
// @Security     BearerAuth
func (h *AccountHandler) HandleGetBalance(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDParam(ctx, "studentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = h.resolveStudent(ctx, spaceID, studentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	balance, err := h.svc.GetBalance(ctx.Request.Context(), studentID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBalance -> h.svc.GetBalance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.BalanceResponse{
		StudentID: studentID,
		Balance:   balance,
	})
}

// HandleGetTransactions godoc
// @Summary      List a student's ledger history
// @Tags         accounts
// @Produce      json
// @Param        spaceID    path      string  true  "space ID"
// @Param        studentID  path      string  true  "student ID"
// @Success      200        {array}   domain.StudentTransaction
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/students/{studentID}/transactions [get]
// @Security     BearerAuth
func (h *AccountHandler) HandleGetTransactions(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDParam(ctx, "studentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = h.resolveStudent(ctx, spaceID, studentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	transactions, err := h.svc.GetTransactions(ctx.Request.Context(), studentID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTransactions -> h.svc.GetTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleCreateTransaction godoc
// @Summary      Record a manual deposit or withdrawal
// @Description  Each call appends a permanent ledger row; repeated identical calls stack.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                            true  "space ID"
// @Param        request  body      request.ManualTransactionRequest  true  "request body"
// @Success      201      {object}  domain.StudentTransaction
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/transactions [post]
// @Security     BearerAuth
func (h *AccountHandler) HandleCreateTransaction(ctx *gin.Context) {
	profileID, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ManualTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if respErr = h.resolveStudent(ctx, spaceID, req.StudentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	transaction, err := h.svc.RecordManualTransaction(ctx.Request.Context(), req.StudentID, req.Amount, req.Withdraw, req.Comment, profileID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAmount))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTransaction -> h.svc.RecordManualTransaction -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}
