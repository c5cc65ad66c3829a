package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services, config *Config) *http.Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	setupHealthCheck(engine)

	api := engine.Group("/api")
	services.Teams.RegisterRoutes(api)
	services.Players.RegisterRoutes(api)
	services.Users.RegisterRoutes(api)
	services.Games.RegisterRoutes(api)
	services.League.RegisterRoutes(api)
	services.FantasyTeam.RegisterRoutes(api)
	services.Roster.RegisterRoutes(api)
	services.Trade.RegisterRoutes(api)
	services.Schedule.RegisterRoutes(api)
	services.Scoring.RegisterRoutes(api)

	origins := config.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: origins,
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(engine)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Server.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func setupHealthCheck(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
