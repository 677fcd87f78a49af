package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/model"
	pkgpostgres "github.com/finbooks/loan-service/pkg/postgres"
)

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	db pkgpostgres.Querier
}

// NewPaymentRepo creates a new PostgreSQL-backed payment repository.
func NewPaymentRepo(db pkgpostgres.Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Save persists a payment, using optimistic version locking on update.
func (r *PaymentRepo) Save(ctx context.Context, payment model.LoanPayment) error {
	query := `
		INSERT INTO loan_payments (
			id, loan_id, tenant_id, account_id,
			payment_date, total_amount, principal_amount, interest_amount,
			notes, version, recorded_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			payment_date     = EXCLUDED.payment_date,
			total_amount     = EXCLUDED.total_amount,
			principal_amount = EXCLUDED.principal_amount,
			interest_amount  = EXCLUDED.interest_amount,
			notes            = EXCLUDED.notes,
			version          = loan_payments.version + 1,
			updated_at       = EXCLUDED.updated_at
		WHERE loan_payments.version = $10
	`
	tag, err := r.db.Exec(ctx, query,
		payment.ID(), payment.LoanID(), payment.TenantID(), payment.AccountID(),
		payment.PaymentDate(), payment.Total(), payment.Principal(), payment.Interest(),
		payment.Notes(), payment.Version(), payment.RecordedAt(), payment.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on payment")
	}
	return nil
}

// FindByID retrieves a payment by ID within a tenant.
func (r *PaymentRepo) FindByID(ctx context.Context, tenantID, id string) (model.LoanPayment, error) {
	query := paymentSelect + ` WHERE tenant_id = $1 AND id = $2`
	return scanPaymentRow(r.db.QueryRow(ctx, query, tenantID, id))
}

// ListByLoan retrieves all payments of a loan. Rows come back in date order
// as a convenience; the balance projector re-sorts regardless.
func (r *PaymentRepo) ListByLoan(ctx context.Context, tenantID, loanID string) ([]model.LoanPayment, error) {
	query := paymentSelect + ` WHERE tenant_id = $1 AND loan_id = $2 ORDER BY payment_date, recorded_at`
	rows, err := r.db.Query(ctx, query, tenantID, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.LoanPayment
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Delete removes a payment. Missing rows map to model.ErrNotFound.
func (r *PaymentRepo) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM loan_payments WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

const paymentSelect = `
	SELECT id, loan_id, tenant_id, account_id,
	       payment_date, total_amount, principal_amount, interest_amount,
	       notes, version, recorded_at, updated_at
	FROM loan_payments`

func scanPaymentRow(row pgx.Row) (model.LoanPayment, error) {
	var (
		id, loanID, tenantID, accountID string
		paymentDate                     time.Time
		total, principal, interest      decimal.Decimal
		notes                           string
		version                         int
		recordedAt, updatedAt           time.Time
	)

	err := row.Scan(
		&id, &loanID, &tenantID, &accountID,
		&paymentDate, &total, &principal, &interest,
		&notes, &version, &recordedAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanPayment{}, model.ErrNotFound
	}
	if err != nil {
		return model.LoanPayment{}, fmt.Errorf("scan payment: %w", err)
	}

	return model.ReconstructLoanPayment(
		id, loanID, tenantID, accountID,
		paymentDate, total, principal, interest,
		notes, version, recordedAt, updatedAt,
	), nil
}
