package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubhub/internal/domain/models"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context) (*dto.EventListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventListResponse), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, id int64) (*dto.EventResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, id int64, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, input dto.ImageUploadInput) (*dto.ImageUploadResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageUploadResponse), args.Error(1)
}

func (m *MockImageService) GetContent(ctx context.Context, id int64) (*models.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) List(ctx context.Context, query dto.ListImagesQuery) (*dto.ImageListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageListResponse), args.Error(1)
}

func (m *MockImageService) UpdateMetadata(ctx context.Context, id int64, req dto.UpdateImageRequest) (*dto.ImageMetadataResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageMetadataResponse), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newEventRouter(events EventService, images ImageService) *Routers {
	return NewRouter(slog.Default(), events, nil, nil, images)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	r := newEventRouter(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, r.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "clubhub", body["service"])
	assert.Equal(t, "0.1.0", body["version"])
	assert.Contains(t, body, "timestamp")
}

func TestCreateEvent(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockEventService)
		r := newEventRouter(mockService, nil)

		mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateEventRequest")).
			Return(&dto.EventResponse{ID: 1, Title: "Open Day"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/events",
			strings.NewReader(`{"title":"Open Day","event_date":"2026-09-12"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, r.CreateEvent(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body dto.EventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(1), body.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockEventService)
		r := newEventRouter(mockService, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/events",
			strings.NewReader(`{"description":"no title"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, r.CreateEvent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "BAD_REQUEST", body["code"])
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("malformed date fails validation", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockEventService)
		r := newEventRouter(mockService, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/events",
			strings.NewReader(`{"title":"Open Day","event_date":"12.09.2026"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, r.CreateEvent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("unknown id returns the not found envelope", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockEventService)
		r := newEventRouter(mockService, nil)

		mockService.On("GetByID", mock.Anything, int64(99)).
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		require.NoError(t, r.GetEvent(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "NOT_FOUND", body["code"])
		assert.Equal(t, "Event not found", body["error"])
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		e := newTestEcho()
		r := newEventRouter(new(MockEventService), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, r.GetEvent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "BAD_REQUEST", body["code"])
	})
}

func TestDeleteEvent(t *testing.T) {
	e := newTestEcho()
	mockService := new(MockEventService)
	r := newEventRouter(mockService, nil)

	mockService.On("Delete", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, r.DeleteEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Event deleted successfully", body["message"])
}

func multipartUpload(t *testing.T, field, filename, contentType string, payload []byte, extra map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if field != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
		header["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	for k, v := range extra {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req, httptest.NewRecorder()
}

func TestUploadImage(t *testing.T) {
	t.Run("missing file part is a bad request", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockImageService)
		r := newEventRouter(nil, mockService)

		req, rec := multipartUpload(t, "", "", "", nil, map[string]string{"category": "events"})
		c := e.NewContext(req, rec)

		require.NoError(t, r.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Upload")
	})

	t.Run("oversized file maps to 413", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockImageService)
		r := newEventRouter(nil, mockService)

		mockService.On("Upload", mock.Anything, mock.AnythingOfType("dto.ImageUploadInput")).
			Return(nil, storage.ErrFileTooLarge)

		req, rec := multipartUpload(t, "file", "big.png", "image/png", []byte("data"), nil)
		c := e.NewContext(req, rec)

		require.NoError(t, r.UploadImage(c))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "FILE_TOO_LARGE", body["code"])
	})

	t.Run("invalid type maps to 400", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockImageService)
		r := newEventRouter(nil, mockService)

		mockService.On("Upload", mock.Anything, mock.AnythingOfType("dto.ImageUploadInput")).
			Return(nil, storage.ErrInvalidFileType)

		req, rec := multipartUpload(t, "file", "doc.pdf", "application/pdf", []byte("data"), nil)
		c := e.NewContext(req, rec)

		require.NoError(t, r.UploadImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_FILE_TYPE", body["code"])
	})

	t.Run("successful upload returns 200 with metadata", func(t *testing.T) {
		e := newTestEcho()
		mockService := new(MockImageService)
		r := newEventRouter(nil, mockService)

		mockService.On("Upload", mock.Anything, mock.MatchedBy(func(in dto.ImageUploadInput) bool {
			return in.FileName == "photo.png" &&
				in.ContentType == "image/png" &&
				in.Category != nil && *in.Category == "events" &&
				in.Description == nil
		})).Return(&dto.ImageUploadResponse{ID: 3, ImageName: "photo.png", FileSize: 4}, nil)

		req, rec := multipartUpload(t, "file", "photo.png", "image/png", []byte("data"),
			map[string]string{"category": "events"})
		c := e.NewContext(req, rec)

		require.NoError(t, r.UploadImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body dto.ImageUploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(3), body.ID)
		mockService.AssertExpectations(t)
	})
}

func TestGetImage(t *testing.T) {
	e := newTestEcho()
	mockService := new(MockImageService)
	r := newEventRouter(nil, mockService)

	mockService.On("GetContent", mock.Anything, int64(3)).Return(&models.Image{
		ID:          3,
		ImageName:   "photo.png",
		ImageData:   []byte("data"),
		ContentType: "image/png",
		FileSize:    4,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/images/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, r.GetImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `inline; filename="photo.png"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, []byte("data"), rec.Body.Bytes())
}
