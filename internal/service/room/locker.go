package room

import (
	"strings"
	"sync"
)

// locker - мьютекс на каждую комнату. Записи удаляются, когда их никто не держит
type locker struct {
	mtx   sync.Mutex
	locks map[string]*roomLock
}

type roomLock struct {
	mtx  sync.Mutex
	refs int
}

func newLocker() *locker {
	return &locker{locks: make(map[string]*roomLock)}
}

// Lock блокирует комнату и возвращает функцию разблокировки
func (l *locker) Lock(roomID string) func() {
	key := strings.ToUpper(roomID)

	l.mtx.Lock()
	rl, ok := l.locks[key]
	if !ok {
		rl = &roomLock{}
		l.locks[key] = rl
	}
	rl.refs++
	l.mtx.Unlock()

	rl.mtx.Lock()

	return func() {
		rl.mtx.Unlock()

		l.mtx.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.locks, key)
		}
		l.mtx.Unlock()
	}
}
