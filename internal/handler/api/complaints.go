package api

import (
	"net/http"

	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaintCommands commands.ComplaintCommands
	complaintQueries  queries.ComplaintQueries
}

func NewComplaintHandler(complaintCommands commands.ComplaintCommands, complaintQueries queries.ComplaintQueries) *ComplaintHandler {
	return &ComplaintHandler{
		complaintCommands: complaintCommands,
		complaintQueries:  complaintQueries,
	}
}

// @Summary File complaint
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateComplaintRequest true "Complaint request"
// @Success 201 {object} queries.ComplaintView
// @Failure 400 {object} map[string]string
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	complaint, err := h.complaintCommands.Create(c.Request.Context(), token, clientID, req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to file complaint",
		})
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// @Summary My complaints
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ComplaintView
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	complaints, err := h.complaintQueries.ListMine(c.Request.Context(), token, clientID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load complaints",
		})
		return
	}

	c.JSON(http.StatusOK, complaints)
}
