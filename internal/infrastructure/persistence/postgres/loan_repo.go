package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
	pkgpostgres "github.com/finbooks/loan-service/pkg/postgres"
)

// LoanRepo implements port.LoanRepository. It holds a Querier so the same
// code works against the pool or inside a transaction.
type LoanRepo struct {
	db pkgpostgres.Querier
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(db pkgpostgres.Querier) *LoanRepo {
	return &LoanRepo{db: db}
}

// Save persists a loan, using optimistic version locking on update.
// Note there is no remaining_balance column: derived figures are never
// stored.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, tenant_id, cash_account_id, name, kind,
			principal, currency, annual_rate, term_months,
			payment_frequency, start_date, suggested_payment,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			name              = EXCLUDED.name,
			suggested_payment = EXCLUDED.suggested_payment,
			version           = loans.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE loans.version = $13
	`
	tag, err := r.db.Exec(ctx, query,
		loan.ID(), loan.TenantID(), loan.CashAccountID(), loan.Name(), loan.Kind().String(),
		loan.Principal(), loan.Currency(), loan.AnnualRate(), loan.TermMonths(),
		loan.Frequency().String(), loan.StartDate(), loan.SuggestedPayment(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan")
	}
	return nil
}

// FindByID retrieves a loan by ID within a tenant.
func (r *LoanRepo) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	query := loanSelect + ` WHERE tenant_id = $1 AND id = $2`
	return scanLoanRow(r.db.QueryRow(ctx, query, tenantID, id))
}

// FindByTenant retrieves all loans of a tenant, newest first.
func (r *LoanRepo) FindByTenant(ctx context.Context, tenantID string) ([]model.Loan, error) {
	query := loanSelect + ` WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

const loanSelect = `
	SELECT id, tenant_id, cash_account_id, name, kind,
	       principal, currency, annual_rate, term_months,
	       payment_frequency, start_date, suggested_payment,
	       version, created_at, updated_at
	FROM loans`

func scanLoanRow(row pgx.Row) (model.Loan, error) {
	var (
		id, tenantID, cashAccountID, name, kindStr string
		principal                                  decimal.Decimal
		currency                                   string
		annualRate                                 decimal.Decimal
		termMonths                                 int
		frequencyStr                               string
		startDate                                  time.Time
		suggestedPayment                           decimal.Decimal
		version                                    int
		createdAt, updatedAt                       time.Time
	)

	err := row.Scan(
		&id, &tenantID, &cashAccountID, &name, &kindStr,
		&principal, &currency, &annualRate, &termMonths,
		&frequencyStr, &startDate, &suggestedPayment,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, model.ErrNotFound
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	kind, err := valueobject.NewLoanKind(kindStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan kind: %w", err)
	}
	frequency, err := valueobject.NewPaymentFrequency(frequencyStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse payment frequency: %w", err)
	}

	return model.ReconstructLoan(
		id, tenantID, cashAccountID, name, kind,
		principal, currency, annualRate, termMonths,
		frequency, startDate, suggestedPayment,
		version, createdAt, updatedAt,
	), nil
}
