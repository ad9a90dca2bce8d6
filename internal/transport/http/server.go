package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"clubhub/internal/domain/models"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/storage"
	"clubhub/internal/transport/http/dto"
	"clubhub/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "clubhub"
	serviceVersion = "0.1.0"
)

type EventService interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error)
	List(ctx context.Context) (*dto.EventListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EventResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id int64) error
}

type GalleryService interface {
	Create(ctx context.Context, req dto.CreateGalleryItemRequest) (*dto.GalleryItemResponse, error)
	List(ctx context.Context) (*dto.GalleryListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GalleryItemResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateGalleryItemRequest) (*dto.GalleryItemResponse, error)
	Delete(ctx context.Context, id int64) error
}

type TeamService interface {
	Create(ctx context.Context, req dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	List(ctx context.Context) (*dto.TeamListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TeamMemberResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Delete(ctx context.Context, id int64) error
}

type ImageService interface {
	Upload(ctx context.Context, input dto.ImageUploadInput) (*dto.ImageUploadResponse, error)
	GetContent(ctx context.Context, id int64) (*models.Image, error)
	List(ctx context.Context, query dto.ListImagesQuery) (*dto.ImageListResponse, error)
	UpdateMetadata(ctx context.Context, id int64, req dto.UpdateImageRequest) (*dto.ImageMetadataResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Routers struct {
	log            *slog.Logger
	EventService   EventService
	GalleryService GalleryService
	TeamService    TeamService
	ImageService   ImageService
}

func NewRouter(log *slog.Logger, eventService EventService, galleryService GalleryService, teamService TeamService, imageService ImageService) *Routers {
	return &Routers{
		log:            log,
		EventService:   eventService,
		GalleryService: galleryService,
		TeamService:    teamService,
		ImageService:   imageService,
	}
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// HealthCheck godoc
// @Summary Service health probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (r *Routers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}

// CreateEvent godoc
// @Summary Create an event
// @Description New events always start unpublished.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event fields"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/events [post]
func (r *Routers) CreateEvent(c echo.Context) error {
	const op = "http.routers.CreateEvent"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorWithDetails(response.CodeBadRequest, "Invalid request format", err.Error()))
	}

	event, err := r.EventService.Create(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create event", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List published events
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/events [get]
func (r *Routers) ListEvents(c echo.Context) error {
	const op = "http.routers.ListEvents"

	events, err := r.EventService.List(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list events", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event by id
// @Description Returns the event whether or not it is published.
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/events/{id} [get]
func (r *Routers) GetEvent(c echo.Context) error {
	const op = "http.routers.GetEvent"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	event, err := r.EventService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Event not found"))
		}
		log.Error("failed to get event", slog.Int64("event_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Description Omitted fields keep their stored values.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/events/{id} [put]
func (r *Routers) UpdateEvent(c echo.Context) error {
	const op = "http.routers.UpdateEvent"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorWithDetails(response.CodeBadRequest, "Invalid request format", err.Error()))
	}

	event, err := r.EventService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Event not found"))
		}
		log.Error("failed to update event", slog.Int64("event_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} response.DeleteResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/events/{id} [delete]
func (r *Routers) DeleteEvent(c echo.Context) error {
	const op = "http.routers.DeleteEvent"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.EventService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Event not found"))
		}
		log.Error("failed to delete event", slog.Int64("event_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, response.Deleted("Event deleted successfully"))
}

// CreateGalleryItem godoc
// @Summary Create a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryItemRequest true "Gallery item fields"
// @Success 201 {object} dto.GalleryItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery [post]
func (r *Routers) CreateGalleryItem(c echo.Context) error {
	const op = "http.routers.CreateGalleryItem"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := r.GalleryService.Create(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create gallery item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListGallery godoc
// @Summary List all gallery items
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.GalleryListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery [get]
func (r *Routers) ListGallery(c echo.Context) error {
	const op = "http.routers.ListGallery"

	items, err := r.GalleryService.List(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, items)
}

// GetGalleryItem godoc
// @Summary Get one gallery item by id
// @Tags gallery
// @Produce json
// @Param id path int true "Gallery item id"
// @Success 200 {object} dto.GalleryItemResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery/{id} [get]
func (r *Routers) GetGalleryItem(c echo.Context) error {
	const op = "http.routers.GetGalleryItem"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	item, err := r.GalleryService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Gallery item not found"))
		}
		log.Error("failed to get gallery item", slog.Int64("item_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateGalleryItem godoc
// @Summary Partially update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path int true "Gallery item id"
// @Param request body dto.UpdateGalleryItemRequest true "Fields to change"
// @Success 200 {object} dto.GalleryItemResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery/{id} [put]
func (r *Routers) UpdateGalleryItem(c echo.Context) error {
	const op = "http.routers.UpdateGalleryItem"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := r.GalleryService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Gallery item not found"))
		}
		log.Error("failed to update gallery item", slog.Int64("item_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem godoc
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Param id path int true "Gallery item id"
// @Success 200 {object} response.DeleteResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery/{id} [delete]
func (r *Routers) DeleteGalleryItem(c echo.Context) error {
	const op = "http.routers.DeleteGalleryItem"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.GalleryService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Gallery item not found"))
		}
		log.Error("failed to delete gallery item", slog.Int64("item_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, response.Deleted("Gallery item deleted successfully"))
}

// CreateTeamMember godoc
// @Summary Create a team member
// @Description New members always start active.
// @Tags team-members
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamMemberRequest true "Member fields"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/team-members [post]
func (r *Routers) CreateTeamMember(c echo.Context) error {
	const op = "http.routers.CreateTeamMember"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorWithDetails(response.CodeBadRequest, "Invalid request format", err.Error()))
	}

	member, err := r.TeamService.Create(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create team member", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusCreated, member)
}

// ListTeamMembers godoc
// @Summary List active team members
// @Tags team-members
// @Produce json
// @Success 200 {object} dto.TeamListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/team-members [get]
func (r *Routers) ListTeamMembers(c echo.Context) error {
	const op = "http.routers.ListTeamMembers"

	members, err := r.TeamService.List(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list team members", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, members)
}

// GetTeamMember godoc
// @Summary Get one team member by id
// @Tags team-members
// @Produce json
// @Param id path int true "Member id"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/team-members/{id} [get]
func (r *Routers) GetTeamMember(c echo.Context) error {
	const op = "http.routers.GetTeamMember"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	member, err := r.TeamService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Team member not found"))
		}
		log.Error("failed to get team member", slog.Int64("member_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, member)
}

// UpdateTeamMember godoc
// @Summary Partially update a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path int true "Member id"
// @Param request body dto.UpdateTeamMemberRequest true "Fields to change"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/team-members/{id} [put]
func (r *Routers) UpdateTeamMember(c echo.Context) error {
	const op = "http.routers.UpdateTeamMember"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorWithDetails(response.CodeBadRequest, "Invalid request format", err.Error()))
	}

	member, err := r.TeamService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Team member not found"))
		}
		log.Error("failed to update team member", slog.Int64("member_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, member)
}

// DeleteTeamMember godoc
// @Summary Delete a team member
// @Tags team-members
// @Produce json
// @Param id path int true "Member id"
// @Success 200 {object} response.DeleteResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/team-members/{id} [delete]
func (r *Routers) DeleteTeamMember(c echo.Context) error {
	const op = "http.routers.DeleteTeamMember"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.TeamService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Team member not found"))
		}
		log.Error("failed to delete team member", slog.Int64("member_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, response.Deleted("Team member deleted successfully"))
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores the binary payload in the database. The payload is
// size-checked incrementally against the configured limit.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Success 200 {object} dto.ImageUploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/images [post]
func (r *Routers) UploadImage(c echo.Context) error {
	const op = "http.routers.UploadImage"

	log := r.log.With(slog.String("op", op))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("no file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, "No file uploaded"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open uploaded file", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, "No file uploaded"))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	input := dto.ImageUploadInput{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Body:        src,
		Category:    formValue(c, "category"),
		Description: formValue(c, "description"),
	}

	summary, err := r.ImageService.Upload(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge,
				response.Error(response.CodeFileTooLarge, "File size exceeds maximum allowed size"))
		case errors.Is(err, storage.ErrInvalidFileType):
			return c.JSON(http.StatusBadRequest,
				response.Error(response.CodeInvalidType, "Invalid file type. Only images are allowed"))
		case errors.Is(err, storage.ErrEmptyFile):
			return c.JSON(http.StatusBadRequest,
				response.Error(response.CodeBadRequest, "No file uploaded"))
		}
		log.Error("failed to upload image", slog.String("filename", fileHeader.Filename), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, summary)
}

// formValue distinguishes an absent multipart field from an empty one.
func formValue(c echo.Context, name string) *string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}

// GetImage godoc
// @Summary Serve raw image content
// @Tags images
// @Produce octet-stream
// @Param id path int true "Image id"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/images/{id} [get]
func (r *Routers) GetImage(c echo.Context) error {
	const op = "http.routers.GetImage"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	image, err := r.ImageService.GetContent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Image not found"))
		}
		log.Error("failed to get image", slog.Int64("image_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", image.ImageName))

	return c.Blob(http.StatusOK, image.ContentType, image.ImageData)
}

// ListImages godoc
// @Summary List image metadata
// @Description Paged listing without binary payloads; total is the full
// count over the filter, not the page length.
// @Tags images
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Page size, capped at 100"
// @Success 200 {object} dto.ImageListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/images [get]
func (r *Routers) ListImages(c echo.Context) error {
	const op = "http.routers.ListImages"

	log := r.log.With(slog.String("op", op))

	var query dto.ListImagesQuery
	if err := c.Bind(&query); err != nil {
		log.Warn("failed to bind query", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	images, err := r.ImageService.List(c.Request().Context(), query)
	if err != nil {
		log.Error("failed to list images", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, images)
}

// UpdateImage godoc
// @Summary Update image metadata
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image id"
// @Param request body dto.UpdateImageRequest true "Fields to change"
// @Success 200 {object} dto.ImageMetadataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/images/{id} [put]
func (r *Routers) UpdateImage(c echo.Context) error {
	const op = "http.routers.UpdateImage"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	meta, err := r.ImageService.UpdateMetadata(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Image not found"))
		}
		log.Error("failed to update image", slog.Int64("image_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, meta)
}

// DeleteImage godoc
// @Summary Delete an image
// @Tags images
// @Produce json
// @Param id path int true "Image id"
// @Success 200 {object} response.DeleteResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/images/{id} [delete]
func (r *Routers) DeleteImage(c echo.Context) error {
	const op = "http.routers.DeleteImage"

	log := r.log.With(slog.String("op", op))

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.ImageService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, "Image not found"))
		}
		log.Error("failed to delete image", slog.Int64("image_id", id), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrDatabase)
	}

	return c.JSON(http.StatusOK, response.Deleted("Image deleted successfully"))
}
