package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/application/ticket/usecases"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/interfaces/http/middleware"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	changeAssigneeUC usecases.ChangeAssigneeExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	changeAssigneeUC usecases.ChangeAssigneeExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		changeStatusUC:   changeStatusUC,
		changeAssigneeUC: changeAssigneeUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if actor == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor.ID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
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

// ListTickets handles GET /tickets. The board expects the whole collection,
// so there is no pagination.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		Actor:     middleware.CurrentActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket status updated"
	if status, err := vo.NewTicketStatus(result.Status); err == nil {
		message = "Ticket moved to " + status.Label() + "."
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// UpdateAssignee handles PATCH /tickets/:id/assignee
func (h *TicketHandler) UpdateAssignee(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket assignee", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}
	if !req.present {
		utils.ErrorResponseWithError(c, errors.NewValidationError("assignee_id is required", "use null to unassign"))
		return
	}

	result, err := h.changeAssigneeUC.Execute(c.Request.Context(), usecases.ChangeAssigneeCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		Actor:      middleware.CurrentActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignee updated", result)
}
