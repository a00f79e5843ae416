package request_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leavedesk/internal/request"
	requesterrors "go-leavedesk/internal/request/errors"
	"go-leavedesk/internal/shared/apperror"
	"go-leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool                     `json:"ok"`
	Data  json.RawMessage          `json:"data"`
	Meta  *response.PaginationMeta `json:"meta"`
	Error *apiError                `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeRequestService struct {
	submitFn  func(ctx context.Context, actorCode string, draft request.CreateRequestDraft) (request.RequestResponse, error)
	getByIDFn func(ctx context.Context, id string) (request.RequestResponse, error)
	getAllFn  func(ctx context.Context, filter request.ListFilter) ([]request.RequestResponse, int64, error)
}

func (f *fakeRequestService) Submit(ctx context.Context, actorCode string, draft request.CreateRequestDraft) (request.RequestResponse, error) {
	return f.submitFn(ctx, actorCode, draft)
}
func (f *fakeRequestService) GetByID(ctx context.Context, id string) (request.RequestResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRequestService) GetAll(ctx context.Context, filter request.ListFilter) ([]request.RequestResponse, int64, error) {
	return f.getAllFn(ctx, filter)
}

func TestRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeRequestService{
			submitFn: func(_ context.Context, actorCode string, draft request.CreateRequestDraft) (request.RequestResponse, error) {
				assert.Equal(t, "EMP-1", actorCode)
				assert.Equal(t, request.TypeLeave, draft.Type)
				return request.RequestResponse{
					ID:             uuid.New().String(),
					EmployeeCode:   actorCode,
					Type:           draft.Type,
					StartDate:      draft.StartDate,
					EndDate:        draft.EndDate,
					DayCount:       2,
					Status:         request.StatusPending,
					RequiredLevels: []string{"manager", "hr"},
					NextLevel:      "manager",
				}, nil
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"type":"leave","leave_mode":"casual","start_date":"2026-03-10","end_date":"2026-03-11","reason":"Family matters"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_code", "EMP-1")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got request.RequestResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, "EMP-1", got.EmployeeCode)
		assert.Equal(t, request.StatusPending, got.Status)
		assert.Equal(t, "manager", got.NextLevel)
	})

	t.Run("negative binding error", func(t *testing.T) {
		h := request.NewHandler(&fakeRequestService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_code", "EMP-1")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})

	t.Run("negative validation violations from service", func(t *testing.T) {
		svc := &fakeRequestService{
			submitFn: func(_ context.Context, _ string, _ request.CreateRequestDraft) (request.RequestResponse, error) {
				return request.RequestResponse{}, apperror.ValidationErrors{
					requesterrors.ErrInvalidDateRange,
					requesterrors.ErrScheduleConflict,
				}
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"type":"leave","leave_mode":"unpaid","start_date":"2026-03-12","end_date":"2026-03-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_code", "EMP-1")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
		assert.Equal(t, "Validation failed", env.Error.Message)
	})

	t.Run("negative unexpected service error is masked", func(t *testing.T) {
		svc := &fakeRequestService{
			submitFn: func(_ context.Context, _ string, _ request.CreateRequestDraft) (request.RequestResponse, error) {
				return request.RequestResponse{}, errors.New("driver: bad connection")
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"type":"permission","start_date":"2026-03-10","start_time":"09:00","end_time":"11:00"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_code", "EMP-1")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInternalError, env.Error.Code)
		assert.NotContains(t, env.Error.Message, "driver")
	})
}

func TestRequestHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeRequestService{
			getByIDFn: func(_ context.Context, got string) (request.RequestResponse, error) {
				assert.Equal(t, id, got)
				return request.RequestResponse{ID: id, Status: request.StatusApproved}, nil
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/requests/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeRequestService{
			getByIDFn: func(_ context.Context, _ string) (request.RequestResponse, error) {
				return request.RequestResponse{}, requesterrors.ErrRequestNotFound
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/requests/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})
}

func TestRequestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with filter and pagination meta", func(t *testing.T) {
		svc := &fakeRequestService{
			getAllFn: func(_ context.Context, filter request.ListFilter) ([]request.RequestResponse, int64, error) {
				assert.Equal(t, "EMP-1", filter.EmployeeCode)
				assert.Equal(t, request.StatusPending, filter.Status)
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 1, filter.PageSize)
				return []request.RequestResponse{
					{ID: uuid.New().String(), EmployeeCode: "EMP-1", Status: request.StatusPending},
				}, 5, nil
			},
		}

		h := request.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/requests?employee_code=EMP-1&status=pending&page=2&page_size=1", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []request.RequestResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.NotNil(t, env.Meta)
		assert.Equal(t, int64(5), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.Page)
		assert.Equal(t, 1, env.Meta.PageSize)
		assert.Equal(t, 5, env.Meta.TotalPages)
	})

	t.Run("negative invalid status filter", func(t *testing.T) {
		h := request.NewHandler(&fakeRequestService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/requests?status=cancelled", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}
