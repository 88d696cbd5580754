package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/deal"
	"cardroom_backend/pkg/niuniu"
	"context"
)

// Deal раздаёт карты всем игрокам и дилеру. Повторная раздача заменяет стол
func (s *serv) Deal(ctx context.Context) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		dealer := room.Dealer()
		if dealer == nil {
			return service.ErrPlayerNotFound
		}

		// Карты получают только игроки из черновика
		ids := make([]string, 0, len(room.Draft.Entries))
		for _, e := range room.Draft.Entries {
			ids = append(ids, e.PlayerID)
		}

		var (
			res *deal.Result
			err error
		)
		switch room.Game {
		case model.GameNiuniu:
			res, err = deal.Niuniu(ids, dealer.ID, s.newRand())
		case model.GameBlackjack:
			res, err = deal.Blackjack(ids, dealer.ID, s.newRand())
		default:
			return service.ErrWrongGame
		}
		if err != nil {
			return err
		}

		table := &model.Table{
			Deck:   res.Deck,
			Hands:  make(map[string]*model.Hand, len(res.Hands)),
			Dealer: model.Hand{Cards: res.Dealer},
		}
		for id, h := range res.Hands {
			table.Hands[id] = &model.Hand{Cards: h}
		}
		room.Table = table
		return nil
	})
}

// handAction - действие игрока над своей рукой в блэкджеке
type handAction func(table *model.Table, hand *model.Hand) error

// playHand проверяет права и состояние руки и выполняет действие.
// Игрок действует за себя, хост и дилер - за любого
func (s *serv) playHand(ctx context.Context, playerID string, act handAction) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if playerID == "" {
			playerID = caller.ID
		}
		if caller.ID != playerID {
			if err := requireHostOrDealer(caller); err != nil {
				return err
			}
		}
		if room.Game != model.GameBlackjack {
			return service.ErrWrongGame
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		if room.Table == nil {
			return service.ErrNoTable
		}
		hand, ok := room.Table.Hands[playerID]
		if !ok {
			return service.ErrPlayerNotFound
		}
		if hand.Locked() {
			return service.ErrHandLocked
		}
		return act(room.Table, hand)
	})
}

func (s *serv) Hit(ctx context.Context, playerID string) (*model.Room, error) {
	return s.playHand(ctx, playerID, func(table *model.Table, hand *model.Hand) error {
		next, err := deal.Hit(table.Deck, hand.Cards)
		if err != nil {
			return err
		}
		hand.Cards = next
		return nil
	})
}

// Double - одна карта и рука закрывается. Только на первых двух картах
func (s *serv) Double(ctx context.Context, playerID string) (*model.Room, error) {
	return s.playHand(ctx, playerID, func(table *model.Table, hand *model.Hand) error {
		if len(hand.Cards) != deal.BlackjackHandSize {
			return service.ErrHandLocked
		}
		next, err := deal.Double(table.Deck, hand.Cards)
		if err != nil {
			return err
		}
		hand.Cards = next
		hand.Doubled = true
		return nil
	})
}

func (s *serv) Stand(ctx context.Context, playerID string) (*model.Room, error) {
	return s.playHand(ctx, playerID, func(_ *model.Table, hand *model.Hand) error {
		hand.Stood = true
		return nil
	})
}

// Surrender - сдаться можно только на первых двух картах
func (s *serv) Surrender(ctx context.Context, playerID string) (*model.Room, error) {
	return s.playHand(ctx, playerID, func(_ *model.Table, hand *model.Hand) error {
		if len(hand.Cards) != deal.BlackjackHandSize {
			return service.ErrHandLocked
		}
		hand.Surrendered = true
		return nil
	})
}

// DealerPlay добирает дилеру карты до 17
func (s *serv) DealerPlay(ctx context.Context) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if room.Game != model.GameBlackjack {
			return service.ErrWrongGame
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		if room.Table == nil {
			return service.ErrNoTable
		}
		if room.Table.Dealer.Stood {
			return service.ErrHandLocked
		}

		next, err := blackjack.PlayDealer(room.Table.Dealer.Cards, room.Table.Deck)
		if err != nil {
			return err
		}
		room.Table.Dealer.Cards = next
		room.Table.Dealer.Stood = true
		return nil
	})
}

// Evaluate оценивает розданные руки и заполняет черновик
func (s *serv) Evaluate(ctx context.Context) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		if room.Table == nil {
			return service.ErrNoTable
		}

		switch room.Game {
		case model.GameNiuniu:
			return s.evaluateNiuniu(room)
		case model.GameBlackjack:
			return s.evaluateBlackjack(room)
		}
		return service.ErrWrongGame
	})
}

func (s *serv) evaluateNiuniu(room *model.Room) error {
	p := s.policy(room.Game)

	dealer := niuniu.Evaluate(room.Table.Dealer.Cards)
	if err := p.SetDealerHand(room.Draft, dealer.Category.Key()); err != nil {
		return err
	}
	for _, e := range room.Draft.Entries {
		hand, ok := room.Table.Hands[e.PlayerID]
		if !ok {
			continue
		}
		res := niuniu.Evaluate(hand.Cards)
		if err := p.SetOutcome(room.Draft, e.PlayerID, res.Category.Key()); err != nil {
			return err
		}
	}
	return nil
}

func (s *serv) evaluateBlackjack(room *model.Room) error {
	p := s.policy(room.Game)
	rules := s.rulesCfg.Blackjack()
	dealerCards := room.Table.Dealer.Cards

	// Рука дилера в черновике для отображения, исходы считаются по картам
	room.Draft.DealerHand = blackjack.LabelOf(blackjack.Evaluate(dealerCards)).String()

	for _, e := range room.Draft.Entries {
		hand, ok := room.Table.Hands[e.PlayerID]
		if !ok {
			continue
		}
		o := blackjack.Resolve(hand.Cards, dealerCards, blackjack.Play{
			Doubled:     hand.Doubled,
			Surrendered: hand.Surrendered,
		}, rules)
		if err := p.SetOutcome(room.Draft, e.PlayerID, o.Key()); err != nil {
			return err
		}
	}
	return nil
}
