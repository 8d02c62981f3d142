package endpoints

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/contact"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/storage"
)

const msgBadAttachment = "Attachments must be an image, PDF, or document under 5 MB."

type ContactController struct {
	service *contact.Service
}

func NewContactController(service *contact.Service) *ContactController {
	return &ContactController{service: service}
}

// ContactModule mounts POST /contact. limiter runs before the handler.
func ContactModule(ctl *ContactController, limiter gin.HandlerFunc) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodPost, "/contact", limiter, ctl.submit)
	})
}

func reply(ctx *gin.Context, code int, success bool, message string) {
	ctx.JSON(code, packets.ContactResponse{Success: success, Message: message})
}

// POST /contact
// Accepts JSON or multipart form data; the latter may carry an "attachment".
func (cc *ContactController) submit(ctx *gin.Context) {
	var (
		sub        contact.Submission
		attachment *multipart.FileHeader
	)

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		if err := ctx.ShouldBind(&sub); err != nil {
			reply(ctx, http.StatusBadRequest, false, contact.MsgMissingFields)
			return
		}
		fh, err := ctx.FormFile("attachment")
		switch {
		case err == nil:
			attachment = fh
		case !errors.Is(err, http.ErrMissingFile):
			reply(ctx, http.StatusBadRequest, false, msgBadAttachment)
			return
		}
	} else if err := ctx.ShouldBindJSON(&sub); err != nil {
		reply(ctx, http.StatusBadRequest, false, contact.MsgMissingFields)
		return
	}

	_, err := cc.service.Submit(ctx.Request.Context(), sub, attachment, ctx.ClientIP())
	var verr *contact.ValidationError
	switch {
	case err == nil:
		reply(ctx, http.StatusOK, true, contact.MsgSent)
	case errors.As(err, &verr):
		reply(ctx, http.StatusBadRequest, false, verr.Message)
	case errors.Is(err, storage.ErrTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		reply(ctx, http.StatusBadRequest, false, msgBadAttachment)
	default:
		log.Error().Err(err).Msg("contact submission failed")
		reply(ctx, http.StatusInternalServerError, false, contact.MsgFailed)
	}
}
