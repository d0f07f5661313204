package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"attendance_backend/logger"
	"attendance_backend/middleware"
	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MarkRecorder receives a notification for every accepted mark.
type MarkRecorder interface {
	RecordMark()
}

type AttendanceHandler struct {
	recorder MarkRecorder
	log      logger.Logger
}

func NewAttendanceHandler(recorder MarkRecorder, log logger.Logger) *AttendanceHandler {
	registerJSONFieldNames()
	return &AttendanceHandler{recorder: recorder, log: log}
}

// MarkAttendance echoes the student and method back. Nothing is stored.
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := bindAttendanceRequest(c, &req); err != nil {
		details := bindingErrorDetails(err)
		h.log.Debug(c.Request.Context(), "attendance request rejected",
			logger.String("request_id", c.GetString(middleware.RequestIDKey)),
			logger.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: details})
		return
	}

	if h.recorder != nil {
		h.recorder.RecordMark()
	}

	c.JSON(http.StatusOK, models.MarkAttendanceResponse{
		Status: fmt.Sprintf("Attendance marked for student %s using %s", *req.StudentID, *req.Method),
	})
}

// bindAttendanceRequest binds the whole body as exactly one JSON value.
// ShouldBindJSON alone stops after the first value and ignores trailing data.
func bindAttendanceRequest(c *gin.Context, req *models.MarkAttendanceRequest) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		return errMalformedBody
	}
	return binding.JSON.BindBody(body, req)
}
