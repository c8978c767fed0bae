package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/review/usecases"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// AddReviewRequest is a client's rating of the firm.
type AddReviewRequest struct {
	Rating            int    `json:"rating" binding:"required,min=1,max=5"`
	Text              string `json:"text" binding:"required,max=2000"`
	ChannelMessageRef string `json:"channel_message_ref" binding:"max=100"`
}

type ReviewHandler struct {
	addReviewUC usecases.AddReviewExecutor
	logger      logger.Interface
}

func NewReviewHandler(addReviewUC usecases.AddReviewExecutor, logger logger.Interface) *ReviewHandler {
	return &ReviewHandler{
		addReviewUC: addReviewUC,
		logger:      logger,
	}
}

// AddReview handles POST /reviews. The author is the calling actor.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add review", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addReviewUC.Execute(c.Request.Context(), usecases.AddReviewCommand{
		AuthorUserID:      middleware.GetActorID(c),
		Rating:            req.Rating,
		Text:              req.Text,
		ChannelMessageRef: req.ChannelMessageRef,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thank you for your review")
}
