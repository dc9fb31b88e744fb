package controller

import (
	"errors"
	"net/http"
	"strconv"

	"streamd/logger"
	"streamd/util/common"
	"streamd/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonMsg sends the response envelope with the given status code. A nil
// data is rendered as an empty object, matching the API contract.
func jsonMsg(c *gin.Context, statusCode int, msg string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(statusCode, entity.Msg{
		Message: msg,
		Data:    data,
	})
}

// jsonErr translates a store error into a status code and the envelope.
func jsonErr(c *gin.Context, msg string, err error) {
	statusCode := statusFromError(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error(msg+":", err)
		jsonMsg(c, statusCode, msg, nil)
		return
	}
	logger.Debug(msg+":", err)
	jsonMsg(c, statusCode, msg+": "+err.Error(), nil)
}

func pureJsonMsg(c *gin.Context, statusCode int, msg string) {
	jsonMsg(c, statusCode, msg, nil)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pathId parses an integer path parameter, failing with ErrBadRequest
// on anything that is not a positive integer.
func pathId(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, common.BadRequestf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}
