package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	NameEN   string `json:"name_en" binding:"required"`
	Password string `json:"password" binding:"required"`
	Note     string `json:"note"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestToDetailsReportsAllMissingFieldsByJSONTag(t *testing.T) {
	err := bind(t, `{"note":"x"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Len(t, details, 2)
	assert.Contains(t, details, "name_en")
	assert.Contains(t, details, "password")
	assert.Equal(t, "name_en is required", details["name_en"])
}

func TestToDetailsPartialPayload(t *testing.T) {
	err := bind(t, `{"name_en":"Rahim"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Len(t, details, 1)
	assert.Contains(t, details, "password")
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bind(t, `{"name_en": }`)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
