package app

import (
	calcAPI "cardroom_backend/internal/api/calc"
	roomAPI "cardroom_backend/internal/api/room"
	sessionAPI "cardroom_backend/internal/api/session"
	"cardroom_backend/internal/config"
	"cardroom_backend/internal/config/env"
	"cardroom_backend/internal/middleware"
	"cardroom_backend/internal/repository"
	"cardroom_backend/internal/repository/memory_repo"
	"cardroom_backend/internal/repository/room_repo"
	"cardroom_backend/internal/repository/stats_repo"
	"cardroom_backend/internal/service"
	"cardroom_backend/internal/service/room"
	"cardroom_backend/pkg/logger"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool

	// Room bits
	jwtCfg    config.JWTConfig
	rulesCfg  config.RulesConfig
	roomRepo  repository.RoomRepository
	statsRepo repository.StatsRepository
	roomServ  service.RoomService
	roomHand  *roomAPI.Handler
	sessHand  *sessionAPI.Handler
	calcHand  *calcAPI.Handler

	// Router and HTTP config
	logCfg  config.LogConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Driver() == config.StoragePostgres
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = memory_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RoomRepository(ctx context.Context) repository.RoomRepository {
	if sp.roomRepo == nil {
		if sp.usePostgres() {
			sp.roomRepo = room_repo.NewRoomRepository(sp.DBClient(ctx))
		} else {
			sp.roomRepo = memory_repo.NewRoomRepository()
		}
	}
	return sp.roomRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) RulesCfg() config.RulesConfig {
	if sp.rulesCfg == nil {
		cfg, err := env.NewRulesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get rules config: " + err.Error())
		}
		sp.rulesCfg = cfg
	}
	return sp.rulesCfg
}

func (sp *ServiceProvider) RoomService(ctx context.Context) service.RoomService {
	if sp.roomServ == nil {
		sp.roomServ = room.NewRoomService(
			sp.RoomRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.JWTCfg(),
			sp.RulesCfg(),
		)
	}
	return sp.roomServ
}

func (sp *ServiceProvider) RoomHandler(ctx context.Context) *roomAPI.Handler {
	if sp.roomHand == nil {
		sp.roomHand = roomAPI.NewHandler(roomAPI.HandlerDeps{Serv: sp.RoomService(ctx)})
	}
	return sp.roomHand
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessHand == nil {
		sp.sessHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv:     sp.RoomService(ctx),
			TokenTTL: sp.JWTCfg().AccessTokenDuration(),
		})
	}
	return sp.sessHand
}

func (sp *ServiceProvider) CalcHandler() *calcAPI.Handler {
	if sp.calcHand == nil {
		sp.calcHand = calcAPI.NewHandler(calcAPI.HandlerDeps{Rules: sp.RulesCfg()})
	}
	return sp.calcHand
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

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Session endpoints
		sessionHandler := sp.SessionHandler(ctx)
		r.Post("/rooms", sessionHandler.Create)
		r.Post("/rooms/join", sessionHandler.Join)

		// Room endpoints, игрок определяется по access_token
		roomHandler := sp.RoomHandler(ctx)
		r.Route("/room", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Get("/", roomHandler.Get)
			rr.Post("/leave", sessionHandler.Leave)
			rr.Post("/host", roomHandler.TransferHost)
			rr.Post("/dealer", roomHandler.SetDealer)
			rr.Post("/kick", roomHandler.Kick)
			rr.Post("/bet", roomHandler.SetBet)
			rr.Post("/score", roomHandler.AdjustScore)

			rr.Route("/round", func(rd chi.Router) {
				rd.Post("/start", roomHandler.StartRound)
				rd.Post("/cancel", roomHandler.CancelRound)
				rd.Post("/draft", roomHandler.UpdateDraft)
				rd.Post("/dealer-hand", roomHandler.SetDealerHand)
				rd.Post("/submit", roomHandler.SubmitResults)
				rd.Post("/undo", roomHandler.UndoRound)
			})

			rr.Route("/table", func(rt chi.Router) {
				rt.Post("/deal", roomHandler.Deal)
				rt.Post("/hit", roomHandler.Hit)
				rt.Post("/double", roomHandler.Double)
				rt.Post("/stand", roomHandler.Stand)
				rt.Post("/surrender", roomHandler.Surrender)
				rt.Post("/dealer-play", roomHandler.DealerPlay)
				rt.Post("/evaluate", roomHandler.Evaluate)
			})

			rr.Get("/settlement", roomHandler.Settlement)
			rr.Post("/end", roomHandler.EndSession)
		})

		// Calculator endpoints
		calcHandler := sp.CalcHandler()
		r.Route("/calc", func(rr chi.Router) {
			rr.Post("/niuniu", calcHandler.Niuniu)
			rr.Post("/blackjack", calcHandler.Blackjack)
			rr.Post("/pnl", calcHandler.PnL)
			rr.Post("/settle", calcHandler.Settle)
			rr.Get("/outcomes", calcHandler.Outcomes)
		})

		r.Get("/stats", roomHandler.Stats)

		logger.Debugw("router ready", "storage", sp.StorageCfg().Driver())

		sp.router = r
	}

	return sp.router
}
