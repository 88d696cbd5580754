package memory_repo

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	"context"
	"strings"
	"sync"
)

// Хранилище комнат в памяти процесса.
// Наружу отдаются только копии, поэтому изменения видны после Update.
type repo struct {
	mtx   sync.RWMutex
	rooms map[string]*model.Room
}

func NewRoomRepository() repository.RoomRepository {
	return &repo{
		rooms: make(map[string]*model.Room),
	}
}

func key(id string) string {
	return strings.ToUpper(id)
}

// Create - сохраняет новую комнату, ErrRoomExists если код занят
func (r *repo) Create(_ context.Context, room *model.Room) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	k := key(room.ID)
	if _, ok := r.rooms[k]; ok {
		return repository.ErrRoomExists
	}
	r.rooms[k] = room.Clone()
	return nil
}

func (r *repo) Get(_ context.Context, id string) (*model.Room, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	room, ok := r.rooms[key(id)]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return room.Clone(), nil
}

// GetForUpdate - в памяти блокировку держит сервис, здесь это обычное чтение
func (r *repo) GetForUpdate(ctx context.Context, id string) (*model.Room, error) {
	return r.Get(ctx, id)
}

func (r *repo) Update(_ context.Context, room *model.Room) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	k := key(room.ID)
	if _, ok := r.rooms[k]; !ok {
		return repository.ErrRoomNotFound
	}
	r.rooms[k] = room.Clone()
	return nil
}

func (r *repo) Exists(_ context.Context, id string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.rooms[key(id)]
	return ok, nil
}
