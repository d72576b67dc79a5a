package app

import (
	simulationAPI "coin_sim/internal/api/simulation"
	"coin_sim/internal/config"
	"coin_sim/internal/config/env"
	"coin_sim/internal/service"
	"coin_sim/internal/service/simulation"
	"coin_sim/pkg/random"
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	// Simulation bits
	simulationCfg  config.SimulationConfig
	simulationServ service.SimulationService
	simulationHand *simulationAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simulationCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(env.ConfigPath("config.yaml"))
		if err != nil {
			panic("failed to get simulation config: " + err.Error())
		}
		sp.simulationCfg = cfg
	}
	return sp.simulationCfg
}

func (sp *ServiceProvider) SimulationService() service.SimulationService {
	if sp.simulationServ == nil {
		sp.simulationServ = simulation.NewSimulationService(sp.SimulationCfg(), random.NewSeed)
	}
	return sp.simulationServ
}

func (sp *ServiceProvider) SimulationHandler() *simulationAPI.Handler {
	if sp.simulationHand == nil {
		sp.simulationHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv:          sp.SimulationService(),
			HistogramBins: sp.SimulationCfg().HistogramBins(),
		})
	}
	return sp.simulationHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"X-Simulation-Seed"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Simulation endpoints
		simulationHandler := sp.SimulationHandler()
		r.Route("/simulation", func(rr chi.Router) {
			rr.Get("/defaults", simulationHandler.Defaults)
			rr.Post("/run", simulationHandler.Run)
			rr.Get("/pmf", simulationHandler.Distribution)
			rr.Post("/charts/{kind}", simulationHandler.Chart)
		})

		sp.router = r
	}

	return sp.router
}
