package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageResponse(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{"整除", 40, 1, 20, 2},
		{"向上取整", 45, 1, 20, 3},
		{"不足一页", 5, 1, 20, 1},
		{"空结果", 0, 1, 20, 0},
		{"单条每页", 3, 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPageResponse([]string{}, tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.wantTotalPages, resp.TotalPages)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.page, resp.Page)
			assert.Equal(t, tt.pageSize, resp.PageSize)
		})
	}
}

func performJSON(handler func(*gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	handler(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Success(c, "", map[string]string{"key": "value"})
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "操作成功", body["message"])
	assert.NotNil(t, body["data"])
}

func TestFailAppErrorEnvelope(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Fail(c, NewNotFound("错题不存在"))
	})

	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "错题不存在", body.Error.Message)
}

func TestFailUnknownErrorHidesDetail(t *testing.T) {
	SetDebugMode(false)
	defer SetDebugMode(false)

	w := performJSON(func(c *gin.Context) {
		Fail(c, errors.New("db connection lost"))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code   string      `json:"code"`
			Detail interface{} `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Detail)
}

func TestFailUnknownErrorShowsDetailInDebug(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	w := performJSON(func(c *gin.Context) {
		Fail(c, errors.New("db connection lost"))
	})

	var body struct {
		Error struct {
			Detail interface{} `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "db connection lost", body.Error.Detail)
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := NewValidationError("", nil)
	derived := base.WithDetail("subject 不能为空")

	assert.Nil(t, base.Detail)
	assert.Equal(t, "subject 不能为空", derived.Detail)
	assert.Equal(t, base.Code, derived.Code)
}
