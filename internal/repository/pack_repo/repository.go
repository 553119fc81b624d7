package pack_repo

import (
	"context"
	"errors"
	"time"

	"revqr_backend/internal/model"
	"revqr_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "spin_packs"
	colID        = "id"
	colUserID    = "user_id"
	colSpins     = "spins_remaining"
	colGrantedAt = "granted_at"
	colExpiresAt = "expires_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPackRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PackRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) Create(ctx context.Context, pack *model.SpinPack) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colSpins, colGrantedAt, colExpiresAt).
		Values(pack.ID, pack.UserID, pack.SpinsRemaining, pack.GrantedAt, pack.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetByID - пакет по идентификатору. model.ErrPackNotFound, если его нет
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*model.SpinPack, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colSpins, colGrantedAt, colExpiresAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var pack model.SpinPack
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&pack.ID, &pack.UserID, &pack.SpinsRemaining, &pack.GrantedAt, &pack.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPackNotFound
		}
		return nil, err
	}

	return &pack, nil
}

// ListActive - неистекшие пакеты с остатком спинов.
// Порядок по возрастанию expires_at: первым тратится ближайший к истечению
func (r *repo) ListActive(ctx context.Context, userID int64, now time.Time) ([]model.SpinPack, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colSpins, colGrantedAt, colExpiresAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.Gt{colSpins: 0}).
		Where(sq.GtOrEq{colExpiresAt: now}).
		OrderBy(colExpiresAt + " ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SpinPack
	for rows.Next() {
		var pack model.SpinPack
		err = rows.Scan(&pack.ID, &pack.UserID, &pack.SpinsRemaining, &pack.GrantedAt, &pack.ExpiresAt)
		if err != nil {
			return nil, err
		}
		result = append(result, pack)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// DecrementSpins списывает один спин с пакета.
// model.ErrPackNotFound, если пакета нет или спины уже кончились
func (r *repo) DecrementSpins(ctx context.Context, id uuid.UUID) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colSpins, sq.Expr(colSpins+" - 1")).
		Where(sq.Eq{colID: id}).
		Where(sq.Gt{colSpins: 0}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrPackNotFound
	}

	return nil
}

// AddSpins пополняет существующий пакет (внешний поток покупки)
func (r *repo) AddSpins(ctx context.Context, id uuid.UUID, spins int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colSpins, sq.Expr(colSpins+" + ?", spins)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrPackNotFound
	}

	return nil
}
