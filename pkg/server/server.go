package server

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/openshelf/sharegate/pkg/config"
	"github.com/openshelf/sharegate/pkg/server/middleware"
	"github.com/openshelf/sharegate/pkg/server/store"
	gormstore "github.com/openshelf/sharegate/pkg/server/store/gorm"
	"github.com/openshelf/sharegate/pkg/sharing"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	UsersStore     store.UsersStore
	ResourcesStore store.ResourcesStore
	RequestsStore  store.ShareRequestsStore
	HealthStore    store.HealthStore

	Visibility *sharing.VisibilityManager
	Engine     *sharing.ShareRequestEngine
	Discovery  *sharing.DiscoveryService

	Authenticator *middleware.Authenticator

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	tokenKey []byte,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: cfg.RequestTimeout(),
		ReadTimeout:  cfg.RequestTimeout(),
	}

	users := gormstore.NewUsersStore(db)
	resources := gormstore.NewResourcesStore(db)
	requests := gormstore.NewShareRequestsStore(db)
	health := gormstore.NewHealthStore(db)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,

		UsersStore:     users,
		ResourcesStore: resources,
		RequestsStore:  requests,
		HealthStore:    health,

		Visibility: sharing.NewVisibilityManager(resources),
		Engine:     sharing.NewShareRequestEngine(resources, requests),
		Discovery:  sharing.NewDiscoveryService(users, resources, cfg.SearchResultLimit),

		Authenticator: middleware.NewAuthenticator(tokenKey),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
