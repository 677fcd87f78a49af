package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/port"
	pkgpostgres "github.com/finbooks/loan-service/pkg/postgres"
)

// CashLedger implements port.CashLedger against the bookkeeping platform's
// accounts and cash_transactions tables. Each posting is double-entry in
// spirit: the journal row and the account balance move together inside one
// database transaction, with the loan itself as the offsetting side.
type CashLedger struct {
	pool *pgxpool.Pool
}

// NewCashLedger creates a PostgreSQL-backed cash ledger adapter.
func NewCashLedger(pool *pgxpool.Pool) *CashLedger {
	return &CashLedger{pool: pool}
}

// CheckFunds reports whether the account can cover an outgoing amount.
// Credit accounts can draw on their credit limit; other accounts may not go
// negative.
func (l *CashLedger) CheckFunds(
	ctx context.Context,
	tenantID, accountID string,
	amount decimal.Decimal,
) (port.FundsCheck, error) {
	var (
		accountType string
		balance     decimal.Decimal
		creditLimit decimal.Decimal
	)
	err := l.pool.QueryRow(ctx, `
		SELECT account_type, balance, credit_limit
		FROM accounts
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, accountID).Scan(&accountType, &balance, &creditLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.FundsCheck{}, model.ErrNotFound
	}
	if err != nil {
		return port.FundsCheck{}, fmt.Errorf("query account: %w", err)
	}

	available := balance
	if accountType == "credit" {
		available = balance.Add(creditLimit)
	}

	return port.FundsCheck{
		HasFunds:  available.GreaterThanOrEqual(amount),
		Available: available,
	}, nil
}

// PostTransaction records a signed cash movement and moves the account
// balance atomically. Overdrawing a non-credit account fails with
// model.ErrInsufficientFunds and nothing is written.
func (l *CashLedger) PostTransaction(
	ctx context.Context,
	tenantID, accountID string,
	amount decimal.Decimal,
	date time.Time,
	description string,
) error {
	return pkgpostgres.WithTransaction(ctx, l.pool, func(tx pgx.Tx) error {
		var (
			accountType string
			balance     decimal.Decimal
		)
		err := tx.QueryRow(ctx, `
			SELECT account_type, balance
			FROM accounts
			WHERE tenant_id = $1 AND id = $2
			FOR UPDATE
		`, tenantID, accountID).Scan(&accountType, &balance)
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		newBalance := balance.Add(amount)
		if accountType != "credit" && newBalance.IsNegative() {
			return model.ErrInsufficientFunds
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO cash_transactions (id, tenant_id, account_id, amount, transaction_date, description)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), tenantID, accountID, amount, date, description); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE accounts SET balance = $1, updated_at = now()
			WHERE tenant_id = $2 AND id = $3
		`, newBalance, tenantID, accountID); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		return nil
	})
}
