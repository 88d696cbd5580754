package stats_repo

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	"cardroom_backend/pkg/money"
	"sync"
)

// windowSize Количество последних раундов, по которым считается оборот окна
const windowSize = 100

// Реализация репозитория для хранения статистики сервера в памяти
type StatsRepo struct {
	mtx    sync.RWMutex
	state  model.Stats
	window []float64
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository() repository.StatsRepository {
	return &StatsRepo{
		state: model.Stats{
			RoomsCreated: make(map[model.Game]int),
			WindowSize:   windowSize,
		},
		window: make([]float64, 0, windowSize),
	}
}

// Stats Возвращает копию текущей статистики
func (r *StatsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s := r.state
	s.RoomsCreated = make(map[model.Game]int, len(r.state.RoomsCreated))
	for g, n := range r.state.RoomsCreated {
		s.RoomsCreated[g] = n
	}
	return s
}

func (r *StatsRepo) RoomCreated(game model.Game) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.RoomsCreated[game]++
}

// RoundSubmitted Учитывает ставки раунда и сдвигает окно
func (r *StatsRepo) RoundSubmitted(results []model.RoundResult) {
	staked := stakedIn(results)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.RoundsSubmitted++
	r.state.TotalStaked = money.Round2(r.state.TotalStaked + staked)

	r.window = append(r.window, staked)
	// Поддерживаем размер окна
	if len(r.window) > windowSize {
		r.window = r.window[1:]
	}
	r.recalculateWindow()
}

// RoundUndone Откатывает ставки отменённого раунда
func (r *StatsRepo) RoundUndone(results []model.RoundResult) {
	staked := stakedIn(results)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.RoundsUndone++
	r.state.TotalStaked = money.Round2(r.state.TotalStaked - staked)
	if n := len(r.window); n > 0 {
		r.window = r.window[:n-1]
	}
	r.recalculateWindow()
}

func (r *StatsRepo) SessionSettled(transfers int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.SessionsSettled++
	r.state.Transfers += transfers
}

func (r *StatsRepo) recalculateWindow() {
	var sum float64
	for _, v := range r.window {
		sum += v
	}
	r.state.WindowStaked = money.Round2(sum)
}

func stakedIn(results []model.RoundResult) float64 {
	var sum float64
	for _, res := range results {
		sum += res.Bet
	}
	return sum
}
