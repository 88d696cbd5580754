package room

import (
	"cardroom_backend/internal/config"
	"cardroom_backend/internal/middleware"
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	"cardroom_backend/internal/round"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/token"
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.RoomRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
	jwtCfg    config.JWTConfig
	rulesCfg  config.RulesConfig

	locks *locker
	now   func() time.Time

	rngMtx sync.Mutex
	rng    *rand.Rand
}

type Option func(*serv)

// WithRand задаёт генератор для тасовки колоды
func WithRand(rng *rand.Rand) Option {
	return func(s *serv) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *serv) { s.now = now }
}

// NewRoomService Создать сервис комнат
func NewRoomService(
	repo repository.RoomRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	jwtCfg config.JWTConfig,
	rulesCfg config.RulesConfig,
	opts ...Option,
) service.RoomService {
	s := &serv{
		repo:      repo,
		statsRepo: statsRepo,
		txManager: txManager,
		jwtCfg:    jwtCfg,
		rulesCfg:  rulesCfg,
		locks:     newLocker(),
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *serv) policy(game model.Game) round.Policy {
	return round.Policy{
		Game: game,
		Rules: round.Rules{
			Niuniu:    s.rulesCfg.Niuniu(),
			Blackjack: s.rulesCfg.Blackjack(),
		},
	}
}

// newRand - отдельный генератор на одну раздачу, общий rand.Rand не потокобезопасен
func (s *serv) newRand() *rand.Rand {
	s.rngMtx.Lock()
	defer s.rngMtx.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func (s *serv) issueSession(roomID, playerID string) (*model.Session, error) {
	sess := &model.Session{RoomID: roomID, PlayerID: playerID}
	accessToken, err := token.GenerateAccessToken(sess, s.jwtCfg.AccessTokenSecretKey(), s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, err
	}
	sess.AccessToken = accessToken
	return sess, nil
}

// mutation - изменение комнаты от имени игрока из контекста
type mutation func(room *model.Room, caller *model.Player) error

// mutate выполняет fn под блокировкой комнаты внутри транзакции
// и сохраняет результат. Закрытые комнаты не меняются.
func (s *serv) mutate(ctx context.Context, fn mutation) (*model.Room, error) {
	return s.update(ctx, false, fn)
}

func (s *serv) update(ctx context.Context, allowSettled bool, fn mutation) (*model.Room, error) {
	claims, ok := middleware.PlayerFromContext(ctx)
	if !ok {
		return nil, service.ErrNoSession
	}

	unlock := s.locks.Lock(claims.RoomID)
	defer unlock()

	var res *model.Room
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.repo.GetForUpdate(txCtx, claims.RoomID)
		if err != nil {
			return err
		}

		caller := room.Player(claims.PlayerID)
		if caller == nil {
			return service.ErrPlayerNotFound
		}
		if room.Status == model.StatusSettled && !allowSettled {
			return service.ErrRoomSettled
		}

		if err := fn(room, caller); err != nil {
			return err
		}

		room.UpdatedAt = s.now()
		if err := s.repo.Update(txCtx, room); err != nil {
			return err
		}
		res = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// load - снимок комнаты игрока из контекста без блокировки
func (s *serv) load(ctx context.Context) (*model.Room, *model.Player, error) {
	claims, ok := middleware.PlayerFromContext(ctx)
	if !ok {
		return nil, nil, service.ErrNoSession
	}

	room, err := s.repo.Get(ctx, claims.RoomID)
	if err != nil {
		return nil, nil, err
	}
	caller := room.Player(claims.PlayerID)
	if caller == nil {
		return nil, nil, service.ErrPlayerNotFound
	}
	return room, caller, nil
}

func requireHost(caller *model.Player) error {
	if !caller.IsHost {
		return service.ErrNotHost
	}
	return nil
}

func requireHostOrDealer(caller *model.Player) error {
	if !caller.IsHost && !caller.IsDealer {
		return service.ErrNotHostOrDealer
	}
	return nil
}

func requirePlaying(room *model.Room) error {
	if room.Status != model.StatusPlaying || room.Draft == nil {
		return service.ErrNoActiveRound
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{service.ErrInvalidInput}, args...)...)
}
