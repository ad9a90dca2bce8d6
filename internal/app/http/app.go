package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	clubmw "clubhub/internal/middleware"
	httprouters "clubhub/internal/transport/http"
	"clubhub/internal/transport/http/dto/response"

	_ "clubhub/docs"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, host, port string, maxBodySize int64, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Headroom over the upload limit so multipart framing does not trip
	// the body limit before the per-file check runs.
	e.Use(middleware.BodyLimit(strconv.FormatInt(maxBodySize+1<<20, 10)))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			)

			return nil
		},
	}))

	e.Use(clubmw.PrometheusMetrics)

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Warn("statsviz registration failed", slog.String("error", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

// errorHandler renders errors echo raises outside handlers (unmatched
// routes, body limit, panics) in the same envelope handlers use.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		var body response.ErrorResponse
		switch code {
		case http.StatusNotFound:
			body = response.Error(response.CodeNotFound, "Resource not found")
		case http.StatusMethodNotAllowed:
			body = response.Error(response.CodeBadRequest, "Method not allowed")
		case http.StatusRequestEntityTooLarge:
			body = response.Error(response.CodeFileTooLarge, "File size exceeds maximum allowed size")
		case http.StatusBadRequest:
			body = response.ErrInvalidRequestFormat
		default:
			log.Error("unhandled http error",
				slog.Int("status", code),
				slog.String("error", err.Error()),
			)
			body = response.ErrInternal
		}

		if jsonErr := c.JSON(code, body); jsonErr != nil {
			log.Error("failed to write error response", slog.String("error", jsonErr.Error()))
		}
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("addr", fmt.Sprintf("%s:%s", s.host, s.port)))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api")
	{
		api.GET("/health", s.routers.HealthCheck)

		events := api.Group("/events")
		{
			events.POST("", s.routers.CreateEvent)
			events.GET("", s.routers.ListEvents)
			events.GET("/:id", s.routers.GetEvent)
			events.PUT("/:id", s.routers.UpdateEvent)
			events.DELETE("/:id", s.routers.DeleteEvent)
		}

		gallery := api.Group("/gallery")
		{
			gallery.POST("", s.routers.CreateGalleryItem)
			gallery.GET("", s.routers.ListGallery)
			gallery.GET("/:id", s.routers.GetGalleryItem)
			gallery.PUT("/:id", s.routers.UpdateGalleryItem)
			gallery.DELETE("/:id", s.routers.DeleteGalleryItem)
		}

		team := api.Group("/team-members")
		{
			team.POST("", s.routers.CreateTeamMember)
			team.GET("", s.routers.ListTeamMembers)
			team.GET("/:id", s.routers.GetTeamMember)
			team.PUT("/:id", s.routers.UpdateTeamMember)
			team.DELETE("/:id", s.routers.DeleteTeamMember)
		}

		images := api.Group("/images")
		{
			images.POST("", s.routers.UploadImage)
			images.GET("", s.routers.ListImages)
			images.GET("/:id", s.routers.GetImage)
			images.PUT("/:id", s.routers.UpdateImage)
			images.DELETE("/:id", s.routers.DeleteImage)
		}
	}
}
