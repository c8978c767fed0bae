package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/ticket/usecases"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

const claimAssignee = "me"

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	assignTicketUC  usecases.AssignTicketExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	linkCaseUC      usecases.LinkCaseExecutor
	convertTicketUC usecases.ConvertTicketExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	linkCaseUC usecases.LinkCaseExecutor,
	convertTicketUC usecases.ConvertTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		assignTicketUC:  assignTicketUC,
		changeStatusUC:  changeStatusUC,
		linkCaseUC:      linkCaseUC,
		convertTicketUC: convertTicketUC,
		logger:          logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// FindTicketByThread handles GET /tickets?thread_ref= and returns the newest
// ticket opened in that thread.
func (h *TicketHandler) FindTicketByThread(c *gin.Context) {
	threadRef := c.Query("thread_ref")
	if threadRef == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("thread_ref is required"))
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{ThreadRef: threadRef})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignTicket handles PUT /tickets/:id/assignee
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID := middleware.GetActorID(c)
	assignee := req.AssigneeID
	if assignee != nil && *assignee == claimAssignee {
		assignee = &actorID
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: assignee,
		AssignedBy: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket assigned successfully"
	if assignee == nil {
		message = "Ticket unassigned"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ChangeStatus handles PUT /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		Status:    req.Status,
		ChangedBy: middleware.GetActorID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// LinkCase handles PUT /tickets/:id/case
func (h *TicketHandler) LinkCase(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LinkCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.linkCaseUC.Execute(c.Request.Context(), usecases.LinkCaseCommand{
		TicketID: ticketID,
		CaseID:   req.CaseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket linked to case", result)
}

// ConvertTicket handles POST /tickets/:id/convert. The body is optional.
func (h *TicketHandler) ConvertTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConvertTicketRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.convertTicketUC.Execute(c.Request.Context(), usecases.ConvertTicketCommand{
		TicketID:    ticketID,
		ClientName:  req.ClientName,
		ChannelRef:  req.ChannelRef,
		Currency:    req.Currency,
		ConvertedBy: middleware.GetActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket converted to case")
}
