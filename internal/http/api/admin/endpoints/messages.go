package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// Inbox is the part of db.Store the inbox reads.
type Inbox interface {
	ListContactMessages(limit, offset int) ([]model.ContactMessage, error)
	GetContactMessage(id int) (*model.ContactMessage, error)
}

type MessagesController struct {
	store Inbox
}

func NewMessagesController(store Inbox) *MessagesController {
	return &MessagesController{store: store}
}

// MessagesModule mounts the contact inbox; every route needs an admin JWT.
func MessagesModule(store Inbox) api.Module {
	ctl := NewMessagesController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/messages", ctl.listMessages)
		c.GET("/messages/:id", ctl.getMessage)
	})
}

// GET /api/admin/messages
func (m *MessagesController) listMessages(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ListMessagesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	all, err := m.store.ListContactMessages(request.Limit, request.Offset)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list messages"}
	}

	out := make([]packets.MessageResponse, 0, len(all))
	for _, msg := range all {
		out = append(out, toMessageResponse(msg))
	}

	log.Debug().Int("user_id", user.ID).Int("count", len(out)).Msg("inbox listed")
	return packets.MessageListResponse{Messages: out, Limit: request.Limit, Offset: request.Offset}, nil
}

// GET /api/admin/messages/:id
func (m *MessagesController) getMessage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid message id"}
	}

	msg, err := m.store.GetContactMessage(id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && msg == nil) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "message not found"}
	}
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load message"}
	}

	return toMessageResponse(*msg), nil
}

func toMessageResponse(msg model.ContactMessage) packets.MessageResponse {
	return packets.MessageResponse{
		ID:            msg.ID,
		Name:          msg.Name,
		Email:         msg.Email,
		Phone:         msg.Phone,
		Subject:       msg.Subject,
		Message:       msg.Message,
		AttachmentURL: msg.AttachmentURL,
		RemoteAddr:    msg.RemoteAddr,
		CreatedAt:     msg.CreatedAt.Format(time.RFC3339),
	}
}
