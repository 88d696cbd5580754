package memory_repo

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	"context"
	"errors"
	"testing"
)

func TestRoomRepository(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository()

	room := &model.Room{ID: "ABC234", Game: model.GameNiuniu, Players: []model.Player{{ID: "a", Name: "Ann"}}}
	if err := r.Create(ctx, room); err != nil {
		t.Fatal(err)
	}
	if err := r.Create(ctx, room); !errors.Is(err, repository.ErrRoomExists) {
		t.Errorf("second Create err = %v", err)
	}

	ok, err := r.Exists(ctx, "abc234")
	if err != nil || !ok {
		t.Errorf("Exists = %v, %v", ok, err)
	}

	// наружу отдаются копии
	room.Players[0].Score = 50
	got, err := r.GetForUpdate(ctx, "abc234")
	if err != nil {
		t.Fatal(err)
	}
	if got.Players[0].Score != 0 {
		t.Error("stored room shares memory with the caller")
	}

	got.Players[0].Score = 12.5
	if err := r.Update(ctx, got); err != nil {
		t.Fatal(err)
	}
	again, _ := r.Get(ctx, "ABC234")
	if again.Players[0].Score != 12.5 {
		t.Errorf("score after Update = %v", again.Players[0].Score)
	}

	if _, err := r.Get(ctx, "ZZZZZZ"); !errors.Is(err, repository.ErrRoomNotFound) {
		t.Errorf("Get missing err = %v", err)
	}
	if err := r.Update(ctx, &model.Room{ID: "ZZZZZZ"}); !errors.Is(err, repository.ErrRoomNotFound) {
		t.Errorf("Update missing err = %v", err)
	}
}

func TestTxManagerPassesThrough(t *testing.T) {
	m := NewTxManager()
	want := errors.New("boom")
	called := false

	err := m.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return want
	})
	if !called || !errors.Is(err, want) {
		t.Errorf("called = %v, err = %v", called, err)
	}
}
