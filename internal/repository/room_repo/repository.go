package room_repo

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/repository"
	repoModel "cardroom_backend/internal/repository/room_repo/model"
	"context"
	"encoding/json"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "rooms"
	colID           = "id"
	colGame         = "game"
	colStatus       = "status"
	colCurrentRound = "current_round"
	colBaseBet      = "base_bet"
	colPlayers      = "players"
	colRounds       = "rounds"
	colDraft        = "draft"
	colTable        = "table_state"
	colCreatedAt    = "created_at"
	colUpdatedAt    = "updated_at"

	uniqueViolation = "23505"
)

var columns = []string{
	colID, colGame, colStatus, colCurrentRound, colBaseBet,
	colPlayers, colRounds, colDraft, colTable, colCreatedAt, colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoomRepository(dbc *pgxpool.Pool) repository.RoomRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - транзакция из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// Create - сохраняет новую комнату.
// Возвращает ErrRoomExists, если код комнаты уже занят
func (r *repo) Create(ctx context.Context, room *model.Room) error {
	row := toRepoRoom(room)
	players, rounds, draft, tbl, err := marshalState(row)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(strings.ToUpper(row.ID), row.Game, row.Status, row.CurrentRound, row.BaseBet,
			players, rounds, draft, tbl, row.CreatedAt, row.UpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrRoomExists
		}
		return err
	}
	return nil
}

// Get - комната по коду без учёта регистра
func (r *repo) Get(ctx context.Context, id string) (*model.Room, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate - то же, что Get, но с SELECT ... FOR UPDATE
func (r *repo) GetForUpdate(ctx context.Context, id string) (*model.Room, error) {
	return r.get(ctx, id, true)
}

func (r *repo) get(ctx context.Context, id string, forUpdate bool) (*model.Room, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colID: strings.ToUpper(id)}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		row                            repoModel.Room
		players, rounds, draft, tblRaw []byte
	)
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&row.ID, &row.Game, &row.Status, &row.CurrentRound, &row.BaseBet,
		&players, &rounds, &draft, &tblRaw, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, err
	}

	if err := unmarshalState(&row, players, rounds, draft, tblRaw); err != nil {
		return nil, err
	}
	return toRoom(&row), nil
}

// Update - перезаписывает состояние комнаты целиком
func (r *repo) Update(ctx context.Context, room *model.Room) error {
	row := toRepoRoom(room)
	players, rounds, draft, tbl, err := marshalState(row)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colStatus, row.Status).
		Set(colCurrentRound, row.CurrentRound).
		Set(colBaseBet, row.BaseBet).
		Set(colPlayers, players).
		Set(colRounds, rounds).
		Set(colDraft, draft).
		Set(colTable, tbl).
		Set(colUpdatedAt, row.UpdatedAt).
		Where(sq.Eq{colID: strings.ToUpper(row.ID)}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrRoomNotFound
	}
	return nil
}

func (r *repo) Exists(ctx context.Context, id string) (bool, error) {
	query := sq.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{colID: strings.ToUpper(id)}).
		Suffix(")").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// marshalState - JSONB колонки. Пустые draft и table пишутся как NULL
func marshalState(row *repoModel.Room) (players, rounds, draft, tbl []byte, err error) {
	players, err = json.Marshal(row.Players)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rounds, err = json.Marshal(row.Rounds)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if row.Draft != nil {
		draft, err = json.Marshal(row.Draft)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}
	if row.Table != nil {
		tbl, err = json.Marshal(row.Table)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return players, rounds, draft, tbl, nil
}

func unmarshalState(row *repoModel.Room, players, rounds, draft, tbl []byte) error {
	if err := json.Unmarshal(players, &row.Players); err != nil {
		return err
	}
	if err := json.Unmarshal(rounds, &row.Rounds); err != nil {
		return err
	}
	if len(draft) > 0 {
		row.Draft = &repoModel.Draft{}
		if err := json.Unmarshal(draft, row.Draft); err != nil {
			return err
		}
	}
	if len(tbl) > 0 {
		row.Table = &model.Table{}
		if err := json.Unmarshal(tbl, row.Table); err != nil {
			return err
		}
	}
	return nil
}
