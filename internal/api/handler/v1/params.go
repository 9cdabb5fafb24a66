package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
)

// pathUUID parses the named path parameter and renders a 400 when it is not a UUID.
func pathUUID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidID(name, err))
		return uuid.Nil, false
	}

	return id, true
}
