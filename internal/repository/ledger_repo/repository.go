package ledger_repo

import (
	"context"
	"errors"

	"revqr_backend/internal/model"
	"revqr_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "coin_transactions"
	colID          = "id"
	colUserID      = "user_id"
	colAmount      = "amount"
	colCategory    = "category"
	colSubtype     = "subtype"
	colDescription = "description"
	colMetadata    = "metadata"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Balance - сумма всех транзакций аккаунта.
// Возвращает 0, если истории нет
func (r *repo) Balance(ctx context.Context, userID int64) (int, error) {
	// Формируем запрос
	query := sq.Select("COALESCE(SUM(" + colAmount + "), 0)").
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return int(balance), nil
}

// Insert добавляет запись журнала.
// Проставляет в trx сгенерированные ID и CreatedAt
func (r *repo) Insert(ctx context.Context, trx *model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colAmount, colCategory, colSubtype, colDescription, colMetadata).
		Values(trx.UserID, trx.Amount, trx.Category, trx.Subtype, trx.Description, trx.Metadata).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&trx.ID, &trx.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// List - страница истории аккаунта, новые записи первыми.
// Курсор beforeID позволяет перезапускать обход с любого места
func (r *repo) List(ctx context.Context, userID int64, limit int, beforeID int64) ([]model.Transaction, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colAmount, colCategory, colSubtype, colDescription, colMetadata, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if beforeID > 0 {
		query = query.Where(sq.Lt{colID: beforeID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var trx model.Transaction
		err = rows.Scan(&trx.ID, &trx.UserID, &trx.Amount, &trx.Category, &trx.Subtype, &trx.Description, &trx.Metadata, &trx.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, trx)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
