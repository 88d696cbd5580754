package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/logger"
	"cardroom_backend/pkg/money"
	"cardroom_backend/pkg/token"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxNameLen = 24
	// codeAttempts Сколько раз пробуем сгенерировать свободный код комнаты
	codeAttempts = 10
)

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name is empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", invalid("name longer than %d characters", maxNameLen)
	}
	return name, nil
}

// Create создаёт комнату. Создатель становится хостом и дилером
func (s *serv) Create(ctx context.Context, in model.CreateRoom) (*model.Session, *model.Room, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, nil, err
	}
	if !in.Game.Valid() {
		return nil, nil, invalid("unknown game %q", in.Game)
	}
	baseBet := money.Round2(in.BaseBet)
	if baseBet <= 0 {
		baseBet = s.rulesCfg.DefaultBaseBet()
	}

	now := s.now()
	creator := model.Player{
		ID:        uuid.NewString(),
		Name:      name,
		IsHost:    true,
		IsDealer:  true,
		Bet:       baseBet,
		Connected: true,
	}
	room := &model.Room{
		Game:      in.Game,
		Players:   []model.Player{creator},
		Rounds:    []model.Round{},
		Status:    model.StatusWaiting,
		BaseBet:   baseBet,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Код может совпасть с существующим, тогда генерируем заново
	for attempt := 0; ; attempt++ {
		if attempt == codeAttempts {
			return nil, nil, service.ErrRoomCodeExhausted
		}
		room.ID, err = token.GenerateRoomCode()
		if err != nil {
			return nil, nil, err
		}

		exists, err := s.repo.Exists(ctx, room.ID)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			continue
		}

		err = s.repo.Create(ctx, room)
		if errors.Is(err, repository.ErrRoomExists) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		break
	}

	sess, err := s.issueSession(room.ID, creator.ID)
	if err != nil {
		return nil, nil, err
	}

	s.statsRepo.RoomCreated(room.Game)
	logger.Infow("room created", "room", room.ID, "game", room.Game, "host", creator.Name)

	return sess, room, nil
}

// Join добавляет игрока в комнату. Если имя уже есть, это переподключение:
// игрок получает новую сессию, в том числе в закрытой комнате
func (s *serv) Join(ctx context.Context, in model.JoinRoom) (*model.Session, *model.Room, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, nil, err
	}
	roomID := strings.ToUpper(strings.TrimSpace(in.RoomID))

	unlock := s.locks.Lock(roomID)
	defer unlock()

	var (
		res      *model.Room
		playerID string
		rejoined bool
	)
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.repo.GetForUpdate(txCtx, roomID)
		if err != nil {
			return err
		}

		if p := room.PlayerByName(name); p != nil {
			p.Connected = true
			playerID = p.ID
			rejoined = true
		} else {
			if room.Status == model.StatusSettled {
				return service.ErrRoomSettled
			}
			p := model.Player{
				ID:        uuid.NewString(),
				Name:      name,
				Bet:       room.BaseBet,
				Connected: true,
			}
			room.Players = append(room.Players, p)
			playerID = p.ID

			// Раунд уже идёт - новый игрок попадает в черновик
			if room.Status == model.StatusPlaying {
				if err := s.policy(room.Game).AddEntry(room.Draft, p, room.BaseBet); err != nil {
					return err
				}
			}
		}

		room.UpdatedAt = s.now()
		if err := s.repo.Update(txCtx, room); err != nil {
			return err
		}
		res = room
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sess, err := s.issueSession(res.ID, playerID)
	if err != nil {
		return nil, nil, err
	}

	logger.Infow("player joined", "room", res.ID, "player", name, "rejoined", rejoined)
	return sess, res, nil
}

func (s *serv) Get(ctx context.Context) (*model.Room, error) {
	room, _, err := s.load(ctx)
	return room, err
}

// Leave помечает игрока отключившимся, счёт и место сохраняются
func (s *serv) Leave(ctx context.Context) (*model.Room, error) {
	return s.update(ctx, true, func(room *model.Room, caller *model.Player) error {
		caller.Connected = false
		return nil
	})
}
