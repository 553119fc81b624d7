package allowance_repo

import (
	"context"
	"errors"
	"time"

	"revqr_backend/internal/model"
	"revqr_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "spin_allowances"
	colUserID        = "user_id"
	colDate          = "date"
	colBaseAllowance = "base_allowance"
	colConsumed      = "consumed_count"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAllowanceRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AllowanceRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Get - счетчик игр за день. Возвращает nil без ошибки, если записи нет
func (r *repo) Get(ctx context.Context, userID int64, day time.Time) (*model.SpinAllowance, error) {
	// Формируем запрос
	query := sq.Select(colUserID, colDate, colBaseAllowance, colConsumed).
		From(table).
		Where(sq.Eq{colUserID: userID, colDate: day}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var allowance model.SpinAllowance
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&allowance.UserID, &allowance.Date, &allowance.BaseAllowance, &allowance.ConsumedCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &allowance, nil
}

// Create создает запись дня. Если запись уже есть - ничего не делает
func (r *repo) Create(ctx context.Context, allowance *model.SpinAllowance) error {
	// Формируем запрос на вставку, если записи не существует
	query := sq.Insert(table).
		Columns(colUserID, colDate, colBaseAllowance, colConsumed).
		Values(allowance.UserID, allowance.Date, allowance.BaseAllowance, allowance.ConsumedCount).
		Suffix("ON CONFLICT (" + colUserID + ", " + colDate + ") DO NOTHING").
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

// IncrementConsumed увеличивает счетчик потраченных игр дня на 1
func (r *repo) IncrementConsumed(ctx context.Context, userID int64, day time.Time) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colConsumed, sq.Expr(colConsumed+" + 1")).
		Where(sq.Eq{colUserID: userID, colDate: day}).
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
