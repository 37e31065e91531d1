package timeentry_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-worktime/internal/timeentry"
	timeentryerrors "go-worktime/internal/timeentry/errors"
	timeentryMock "go-worktime/internal/timeentry/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHandlerRouter(handler *timeentry.Handler, companyID, userID, role string) (*httptest.ResponseRecorder, *gin.Engine) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("user_id_validated", userID)
		if role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	})
	return w, r
}

func TestHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("Success", func(t *testing.T) {
		reqBody := timeentry.ClockInRequest{Time: "08:57"}
		mockResp := timeentry.TimeEntryResponse{
			ID:        "entry-1",
			CompanyID: compID,
			UserID:    userID,
			CheckIn:   "09:00",
			EntryType: "WORK",
		}

		mockService.EXPECT().ClockIn(gomock.Any(), compID, userID, gomock.Any()).Return(mockResp, nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		jsonReq, _ := json.Marshal(reqBody)
		r.POST("/clock-in", handler.ClockIn)
		req, _ := http.NewRequest(http.MethodPost, "/clock-in", bytes.NewBuffer(jsonReq))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
	})

	t.Run("Conflict", func(t *testing.T) {
		mockService.EXPECT().ClockIn(gomock.Any(), compID, userID, gomock.Any()).
			Return(timeentry.TimeEntryResponse{}, timeentryerrors.ErrEntryOverlap)

		w, r := newHandlerRouter(handler, compID, userID, "")
		jsonReq, _ := json.Marshal(timeentry.ClockInRequest{Time: "09:00"})
		r.POST("/clock-in", handler.ClockIn)
		req, _ := http.NewRequest(http.MethodPost, "/clock-in", bytes.NewBuffer(jsonReq))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		w, r := newHandlerRouter(handler, compID, userID, "")
		r.POST("/clock-in", handler.ClockIn)
		req, _ := http.NewRequest(http.MethodPost, "/clock-in", bytes.NewBufferString("{not json"))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ClockOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("Success", func(t *testing.T) {
		mockResp := timeentry.TimeEntryResponse{ID: "entry-1", CheckIn: "09:00"}
		mockService.EXPECT().ClockOut(gomock.Any(), compID, userID, gomock.Any()).Return(mockResp, nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		jsonReq, _ := json.Marshal(timeentry.ClockOutRequest{Time: "17:32"})
		r.POST("/clock-out", handler.ClockOut)
		req, _ := http.NewRequest(http.MethodPost, "/clock-out", bytes.NewBuffer(jsonReq))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NoOpenEntry", func(t *testing.T) {
		mockService.EXPECT().ClockOut(gomock.Any(), compID, userID, gomock.Any()).
			Return(timeentry.TimeEntryResponse{}, timeentryerrors.ErrNoOpenEntry)

		w, r := newHandlerRouter(handler, compID, userID, "")
		jsonReq, _ := json.Marshal(timeentry.ClockOutRequest{Time: "17:00"})
		r.POST("/clock-out", handler.ClockOut)
		req, _ := http.NewRequest(http.MethodPost, "/clock-out", bytes.NewBuffer(jsonReq))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_CreateLeave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("Success", func(t *testing.T) {
		mockResp := timeentry.TimeEntryResponse{ID: "entry-1", EntryType: "LEAVE"}
		mockService.EXPECT().CreateLeave(gomock.Any(), compID, userID, gomock.Any()).Return(mockResp, nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		jsonReq, _ := json.Marshal(timeentry.CreateLeaveRequest{Date: "2026-03-02"})
		r.POST("/leave", handler.CreateLeave)
		req, _ := http.NewRequest(http.MethodPost, "/leave", bytes.NewBuffer(jsonReq))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("MissingDate", func(t *testing.T) {
		w, r := newHandlerRouter(handler, compID, userID, "")
		r.POST("/leave", handler.CreateLeave)
		req, _ := http.NewRequest(http.MethodPost, "/leave", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("SelfScope", func(t *testing.T) {
		mockService.EXPECT().GetAll(gomock.Any(), compID, userID, false).
			Return([]timeentry.TimeEntryResponse{{ID: "entry-1"}}, nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		r.GET("/entries", handler.GetAll)
		req, _ := http.NewRequest(http.MethodGet, "/entries", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ManagerReadsAll", func(t *testing.T) {
		mockService.EXPECT().GetAll(gomock.Any(), compID, userID, true).
			Return([]timeentry.TimeEntryResponse{}, nil)

		w, r := newHandlerRouter(handler, compID, userID, "manager")
		r.GET("/entries", handler.GetAll)
		req, _ := http.NewRequest(http.MethodGet, "/entries", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_DaySummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("Success", func(t *testing.T) {
		mockResp := timeentry.DaySummaryResponse{UserID: userID, WorkDate: "2026-03-02"}
		mockService.EXPECT().DaySummary(gomock.Any(), userID, "2026-03-02").Return(mockResp, nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		r.GET("/summary/:date", handler.DaySummary)
		req, _ := http.NewRequest(http.MethodGet, "/summary/2026-03-02", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ForbiddenForOtherUser", func(t *testing.T) {
		w, r := newHandlerRouter(handler, compID, userID, "")
		r.GET("/summary/:date", handler.DaySummary)
		req, _ := http.NewRequest(http.MethodGet, "/summary/2026-03-02?user_id=someone-else", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ManagerReadsOtherUser", func(t *testing.T) {
		mockResp := timeentry.DaySummaryResponse{UserID: "other-user", WorkDate: "2026-03-02"}
		mockService.EXPECT().DaySummary(gomock.Any(), "other-user", "2026-03-02").Return(mockResp, nil)

		w, r := newHandlerRouter(handler, compID, userID, "manager")
		r.GET("/summary/:date", handler.DaySummary)
		req, _ := http.NewRequest(http.MethodGet, "/summary/2026-03-02?user_id=other-user", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := timeentryMock.NewMockService(ctrl)
	handler := timeentry.NewHandler(mockService, nil)

	compID := "comp-123"
	userID := "user-123"

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), compID, "entry-1").Return(nil)

		w, r := newHandlerRouter(handler, compID, userID, "")
		r.DELETE("/entries/:id", handler.Delete)
		req, _ := http.NewRequest(http.MethodDelete, "/entries/entry-1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), compID, "missing").
			Return(timeentryerrors.ErrEntryNotFound)

		w, r := newHandlerRouter(handler, compID, userID, "")
		r.DELETE("/entries/:id", handler.Delete)
		req, _ := http.NewRequest(http.MethodDelete, "/entries/missing", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
