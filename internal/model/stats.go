package model

// Stats - счётчики сервера с момента запуска
type Stats struct {
	RoomsCreated    map[Game]int
	RoundsSubmitted int
	RoundsUndone    int
	SessionsSettled int
	Transfers       int
	TotalStaked     float64
	// WindowStaked - ставки последних WindowSize раундов
	WindowStaked float64
	WindowSize   int
}
