package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/caseflow-kz/caseflow-backend/models"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil error writes nothing", nil, http.StatusOK},
		{"bad parameter", errors.Wrap(models.BadParameterError, "missing field"), http.StatusBadRequest},
		{"unknown status", models.ErrUnknownCaseStatus, http.StatusBadRequest},
		{"unprocessable state", models.ErrHearingOnNonAcceptedCase, http.StatusUnprocessableEntity},
		{"not found", models.ErrUnknownResponsible, http.StatusNotFound},
		{"conflict", errors.Wrap(models.ConflictError, "duplicate number"), http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			handled := presentError(context.Background(), c, tt.err)

			assert.Equal(t, tt.err != nil, handled)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
