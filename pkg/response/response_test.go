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

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, "created", gin.H{"id": "1"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "1"}, body["data"])
	assert.NotContains(t, body, "errors")
}

func TestSuccessDefaultsTo200(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, 0, "ok", nil)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusConflict, "conflict", map[string]string{"mobile_number": "taken"})
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "conflict", body["message"])
	assert.Equal(t, map[string]interface{}{"mobile_number": "taken"}, body["errors"])
	assert.NotContains(t, body, "data")
}

func TestErrorDefaultsTo400(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, 0, "bad", nil)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "errors")
	assert.Nil(t, body["errors"])
}

func TestAbortErrorStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/x",
		func(c *gin.Context) { AbortError(c, http.StatusUnauthorized, "nope", nil) },
		func(c *gin.Context) { reached = true },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.Equal(t, "nope", decode(t, w)["message"])
}
