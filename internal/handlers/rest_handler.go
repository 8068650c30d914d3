package handlers

import (
	"log"
	"net/http"
	"strconv"

	"portalchat/configs"
	"portalchat/internal/errs"
	"portalchat/internal/models"
	"portalchat/internal/msgs"
	"portalchat/internal/services"
	"portalchat/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	chatService *services.ChatService
	configs     *configs.Config
}

func NewRestHandler(chatService *services.ChatService, configs *configs.Config) *RestHandler {
	return &RestHandler{
		chatService: chatService,
		configs:     configs,
	}
}

// GetConversations godoc
// @Summary      List conversations of the authenticated caller
// @Description  Display rows ordered by last activity, newest first
// @Tags         messages
// @Produce      json
// @Param        page  query  int  false  "Page"
// @Param        size  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/conversations [get]
func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	callerID := utils.GetCallerIDFromContext(ctx)
	if callerID == "" {
		log.Println("Caller id not found in context")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	pageInt, sizeInt := pagination(ctx)

	conversationsResponse, serviceErrs := rh.chatService.GetConversations(ctx.Request.Context(), callerID, pageInt, sizeInt)
	if len(serviceErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  serviceErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversationsResponse,
	})
}

// GetThread godoc
// @Summary      Thread with one counterpart
// @Description  Messages between the caller and the counterpart in either direction, oldest first
// @Tags         messages
// @Produce      json
// @Param        counterpartId  path   string  true   "Counterpart participant id"
// @Param        page           query  int     false  "Page"
// @Param        size           query  int     false  "Page size"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/conversations/{counterpartId}/messages [get]
func (rh *RestHandler) GetThread(ctx *gin.Context) {
	callerID := utils.GetCallerIDFromContext(ctx)
	if callerID == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	counterpartID := ctx.Param("counterpartId")
	if counterpartID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	pageInt, sizeInt := pagination(ctx)

	messagesResponse, serviceErrs := rh.chatService.GetThread(ctx.Request.Context(), callerID, counterpartID, pageInt, sizeInt)
	if len(serviceErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  serviceErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messagesResponse,
	})
}

// SendMessage godoc
// @Summary      Send a message to a counterpart
// @Description  Blank content is accepted and ignored; nothing is stored
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        counterpartId  path  string                         true  "Counterpart participant id"
// @Param        body           body  models.SendMessageRequestBody  true  "Message body"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /api/conversations/{counterpartId}/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	callerID := utils.GetCallerIDFromContext(ctx)
	if callerID == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	counterpartID := ctx.Param("counterpartId")
	if counterpartID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	var body models.SendMessageRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	message, serviceErrs := rh.chatService.SendMessage(ctx.Request.Context(), callerID, counterpartID, body.Content)
	if len(serviceErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgMessageNotSent,
			Errors:  serviceErrs,
		})
		return
	}

	// Blank content: a no-op, reported as success with nothing stored.
	if message == nil {
		ctx.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: msgs.MsgNothingToSend,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageSent,
	})
}

// Healthz godoc
// @Summary      Liveness probe
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /healthz [get]
func (rh *RestHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func pagination(ctx *gin.Context) (int, int) {
	pageInt, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || pageInt < 1 {
		pageInt = 1
	}
	sizeInt, err := strconv.Atoi(ctx.Query("size"))
	if err != nil || sizeInt < 1 {
		sizeInt = 10
	}
	return pageInt, sizeInt
}
