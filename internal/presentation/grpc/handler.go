package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/application/usecase"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/pkg/auth"
)

// LoanHandler implements the gRPC loan service handler. Amounts and dates
// travel as strings on the wire; the handler parses them and delegates to
// the use cases.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	createLoan     *usecase.CreateLoanUseCase
	getLoan        *usecase.GetLoanUseCase
	listLoans      *usecase.ListLoansUseCase
	recordPayment  *usecase.RecordPaymentUseCase
	updatePayment  *usecase.UpdatePaymentUseCase
	deletePayment  *usecase.DeletePaymentUseCase
	getSchedule    *usecase.GetScheduleUseCase
	suggestPayment *usecase.SuggestPaymentUseCase
}

// NewLoanHandler creates a new gRPC loan handler.
func NewLoanHandler(
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	recordPayment *usecase.RecordPaymentUseCase,
	updatePayment *usecase.UpdatePaymentUseCase,
	deletePayment *usecase.DeletePaymentUseCase,
	getSchedule *usecase.GetScheduleUseCase,
	suggestPayment *usecase.SuggestPaymentUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoan:     createLoan,
		getLoan:        getLoan,
		listLoans:      listLoans,
		recordPayment:  recordPayment,
		updatePayment:  updatePayment,
		deletePayment:  deletePayment,
		getSchedule:    getSchedule,
		suggestPayment: suggestPayment,
	}
}

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// CreateLoanRequest represents the gRPC request for creating a loan.
type CreateLoanRequest struct {
	TenantID      string `json:"tenant_id"`
	CashAccountID string `json:"cash_account_id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Principal     string `json:"principal"`
	Currency      string `json:"currency"`
	AnnualRate    string `json:"annual_rate"`
	TermMonths    int    `json:"term_months"`
	Frequency     string `json:"payment_frequency,omitempty"`
	StartDate     string `json:"start_date"`
}

// GetLoanRequest represents the gRPC request for retrieving a loan.
type GetLoanRequest struct {
	TenantID string `json:"tenant_id"`
	LoanID   string `json:"loan_id"`
}

// ListLoansRequest represents the gRPC request for listing a tenant's loans.
type ListLoansRequest struct {
	TenantID string `json:"tenant_id"`
}

// ListLoansResponse represents the gRPC response for listing loans.
type ListLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

// RecordPaymentRequest represents the gRPC request for recording a payment.
// Principal and Interest are optional; when both are present they form a
// custom split.
type RecordPaymentRequest struct {
	TenantID                  string `json:"tenant_id"`
	LoanID                    string `json:"loan_id"`
	AccountID                 string `json:"account_id,omitempty"`
	PaymentDate               string `json:"payment_date"`
	Total                     string `json:"total_amount"`
	Principal                 string `json:"principal_amount,omitempty"`
	Interest                  string `json:"interest_amount,omitempty"`
	Notes                     string `json:"notes,omitempty"`
	PeriodsPerYearForInterest int    `json:"periods_per_year_for_interest,omitempty"`
}

// UpdatePaymentRequest represents the gRPC request for amending a payment.
type UpdatePaymentRequest struct {
	TenantID                  string `json:"tenant_id"`
	PaymentID                 string `json:"payment_id"`
	PaymentDate               string `json:"payment_date"`
	Total                     string `json:"total_amount"`
	Principal                 string `json:"principal_amount,omitempty"`
	Interest                  string `json:"interest_amount,omitempty"`
	Notes                     string `json:"notes,omitempty"`
	PeriodsPerYearForInterest int    `json:"periods_per_year_for_interest,omitempty"`
}

// DeletePaymentRequest represents the gRPC request for deleting a payment.
type DeletePaymentRequest struct {
	TenantID  string `json:"tenant_id"`
	PaymentID string `json:"payment_id"`
}

// GetScheduleRequest represents the gRPC request for a projected schedule.
type GetScheduleRequest struct {
	TenantID string `json:"tenant_id"`
	LoanID   string `json:"loan_id"`
}

// SuggestPaymentRequest represents the gRPC request for a payment suggestion.
type SuggestPaymentRequest struct {
	TenantID                  string `json:"tenant_id"`
	LoanID                    string `json:"loan_id"`
	PeriodsPerYearForInterest int    `json:"periods_per_year_for_interest,omitempty"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// CreateLoan handles the gRPC CreateLoan request.
func (h *LoanHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*dto.LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid principal: %v", err))
	}
	rate, err := decimal.NewFromString(req.AnnualRate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid annual_rate: %v", err))
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid start_date: %v", err))
	}

	result, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		TenantID:      tenantFrom(ctx, req.TenantID),
		CashAccountID: req.CashAccountID,
		Name:          req.Name,
		Kind:          req.Kind,
		Principal:     principal,
		Currency:      req.Currency,
		AnnualRate:    rate,
		TermMonths:    req.TermMonths,
		Frequency:     req.Frequency,
		StartDate:     startDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// GetLoan handles the gRPC GetLoan request.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*dto.LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{
		TenantID: tenantFrom(ctx, req.TenantID),
		LoanID:   req.LoanID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// ListLoans handles the gRPC ListLoans request.
func (h *LoanHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	loans, err := h.listLoans.Execute(ctx, dto.ListLoansRequest{
		TenantID: tenantFrom(ctx, req.TenantID),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ListLoansResponse{Loans: loans}, nil
}

// RecordPayment handles the gRPC RecordPayment request.
func (h *LoanHandler) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*dto.LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid total_amount: %v", err))
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid payment_date: %v", err))
	}
	principal, interest, err := parseSplit(req.Principal, req.Interest)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := h.recordPayment.Execute(ctx, dto.RecordPaymentRequest{
		TenantID:                  tenantFrom(ctx, req.TenantID),
		LoanID:                    req.LoanID,
		AccountID:                 req.AccountID,
		PaymentDate:               paymentDate,
		Total:                     total,
		Principal:                 principal,
		Interest:                  interest,
		Notes:                     req.Notes,
		PeriodsPerYearForInterest: req.PeriodsPerYearForInterest,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// UpdatePayment handles the gRPC UpdatePayment request.
func (h *LoanHandler) UpdatePayment(ctx context.Context, req *UpdatePaymentRequest) (*dto.LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid total_amount: %v", err))
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid payment_date: %v", err))
	}
	principal, interest, err := parseSplit(req.Principal, req.Interest)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := h.updatePayment.Execute(ctx, dto.UpdatePaymentRequest{
		TenantID:                  tenantFrom(ctx, req.TenantID),
		PaymentID:                 req.PaymentID,
		PaymentDate:               paymentDate,
		Total:                     total,
		Principal:                 principal,
		Interest:                  interest,
		Notes:                     req.Notes,
		PeriodsPerYearForInterest: req.PeriodsPerYearForInterest,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// DeletePayment handles the gRPC DeletePayment request.
func (h *LoanHandler) DeletePayment(ctx context.Context, req *DeletePaymentRequest) (*dto.LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.deletePayment.Execute(ctx, dto.DeletePaymentRequest{
		TenantID:  tenantFrom(ctx, req.TenantID),
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// GetSchedule handles the gRPC GetSchedule request.
func (h *LoanHandler) GetSchedule(ctx context.Context, req *GetScheduleRequest) (*dto.ScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getSchedule.Execute(ctx, dto.GetScheduleRequest{
		TenantID: tenantFrom(ctx, req.TenantID),
		LoanID:   req.LoanID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// SuggestPayment handles the gRPC SuggestPayment request.
func (h *LoanHandler) SuggestPayment(ctx context.Context, req *SuggestPaymentRequest) (*dto.PaymentSuggestionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.suggestPayment.Execute(ctx, dto.SuggestPaymentRequest{
		TenantID:                  tenantFrom(ctx, req.TenantID),
		LoanID:                    req.LoanID,
		PeriodsPerYearForInterest: req.PeriodsPerYearForInterest,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &result, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// tenantFrom prefers the authenticated tenant over the request field, so a
// token for one tenant can never read another tenant's loans.
func tenantFrom(ctx context.Context, requested string) string {
	if claims, ok := auth.ClaimsFromContext(ctx); ok && claims.TenantID != uuid.Nil {
		return claims.TenantID.String()
	}
	return requested
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseSplit parses an optional custom principal/interest split. Both parts
// must be present or both absent.
func parseSplit(principal, interest string) (*decimal.Decimal, *decimal.Decimal, error) {
	if principal == "" && interest == "" {
		return nil, nil, nil
	}
	if principal == "" || interest == "" {
		return nil, nil, errors.New("custom split requires both principal_amount and interest_amount")
	}
	p, err := decimal.NewFromString(principal)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid principal_amount: %v", err)
	}
	i, err := decimal.NewFromString(interest)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid interest_amount: %v", err)
	}
	return &p, &i, nil
}

func statusFromError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrInvalidPrincipal),
		errors.Is(err, model.ErrInvalidRate),
		errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrInvalidPayment),
		errors.Is(err, model.ErrSplitMismatch),
		errors.Is(err, model.ErrNoPaymentFrequency),
		errors.Is(err, model.ErrTenantRequired),
		errors.Is(err, model.ErrAccountRequired),
		errors.Is(err, model.ErrKindRequired),
		errors.Is(err, model.ErrCurrencyRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
