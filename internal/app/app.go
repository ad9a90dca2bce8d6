package app

import (
	"context"

	"log/slog"

	httpapp "clubhub/internal/app/http"
	"clubhub/internal/config"
	"clubhub/internal/repository"
	event "clubhub/internal/services/event_service"
	gallery "clubhub/internal/services/gallery_service"
	image "clubhub/internal/services/image_service"
	team "clubhub/internal/services/team_service"
	"clubhub/internal/storage/postgresql"
	httprouters "clubhub/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *postgresql.Storage
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	repo := repository.NewRepository(storage.DB())

	eventService := event.NewEventService(log, repo.Event)
	galleryService := gallery.NewGalleryService(log, repo.Gallery)
	teamService := team.NewTeamService(log, repo.Team)
	imageService := image.NewImageService(log, repo.Image, cfg.Upload.MaxFileSize)

	routers := httprouters.NewRouter(log, eventService, galleryService, teamService, imageService)

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.Upload.MaxFileSize, routers)

	return &App{
		HTTPServer: server,
		Storage:    storage,
	}
}
