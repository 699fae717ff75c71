package server

import (
	"net/http"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/BreweryStats/pkg/repository"
)

type BreweryServer struct {
	repository repository.BreweryRepository
	logger     *zap.Logger
}

func NewBreweryServer(repository repository.BreweryRepository, logger *zap.Logger) *BreweryServer {
	return &BreweryServer{repository: repository, logger: logger}
}

// NewHandler serves the front end, the JSON API and the datastore health check.
func NewHandler(store repository.BreweryRepository, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(RequestLogger(logger))
	router.Use(middleware.Recoverer)

	breweries := NewBreweryServer(store, logger)
	router.Get("/", breweries.Index)
	router.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))
	router.Route("/api", breweries.Routes)

	path, health := grpchealth.NewHandler(NewDatastoreChecker(store, logger))
	router.Handle(path+"*", health)

	router.NotFound(breweries.notFound)
	router.MethodNotAllowed(breweries.methodNotAllowed)

	return router
}

func (b *BreweryServer) Routes(router chi.Router) {
	router.Get("/all", b.All)
	router.Get("/count_by_region", b.CountByRegion)
	router.Get("/count_by/{column}", b.CountBy)
	router.Get("/count_by/{column}/{column2}", b.CountBy)
	router.Get("/values/{column}", b.Values)
	router.Get("/values/{column}/", b.Values)
	router.Get("/values/{column}/{groupBy}", b.Values)
	router.Get("/where/{region}", b.Where)
}
