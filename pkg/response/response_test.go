package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	fn(c)

	var env Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSuccessEnvelope(t *testing.T) {
	w, env := record(func(c *gin.Context) {
		Success(c, gin.H{"units": 3})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "success", env.Message)
	require.NotNil(t, env.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	w, env := record(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "created", env.Message)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(c *gin.Context)
		status int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "denied") }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "missing") }, http.StatusNotFound},
		{"internal", func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := record(tt.fn)

			assert.Equal(t, tt.status, w.Code)
			// error envelopes mirror the HTTP status in the code field
			assert.Equal(t, tt.status, env.Code)
			assert.Nil(t, env.Data)
		})
	}
}
