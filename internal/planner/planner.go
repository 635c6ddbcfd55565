// Package planner is the application-facing adapter around the calculation
// engine. It converts primitive inputs into domain objects, runs validation,
// and flattens results back to plain records for presentation. It is the only
// layer that recovers from domain errors; everything below fails loudly.
package planner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-planner/internal/loan"
	"github.com/iwvelando/mortgage-planner/internal/schedule"
	"github.com/iwvelando/mortgage-planner/pkg/interest"
	"github.com/iwvelando/mortgage-planner/pkg/loanterm"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
	"github.com/iwvelando/mortgage-planner/pkg/money"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

// LoanInput carries raw loan parameters as primitives.
type LoanInput struct {
	Amount            float64 `json:"amount"`
	AnnualRatePercent float64 `json:"interestRate"`
	TermMonths        int     `json:"termMonths"`
	PaymentStyle      string  `json:"paymentStyle" validate:"omitempty,oneof=equal decreasing"`
	StartDate         string  `json:"startDate"` // "YYYY-MM"
}

// OverpaymentInput carries raw overpayment parameters as primitives.
type OverpaymentInput struct {
	BaseAmount float64         `json:"baseAmount"`
	Effect     string          `json:"effect" validate:"omitempty,oneof=shorten_term reduce_payment"`
	Custom     map[int]float64 `json:"customOverpayments,omitempty"`
}

// Row is one period of the flattened schedule.
type Row struct {
	Month             int      `json:"month"`
	Date              string   `json:"date"`
	DateDisplay       string   `json:"dateDisplay"`
	PrincipalPayment  float64  `json:"principalPayment"`
	InterestPayment   float64  `json:"interestPayment"`
	TotalPayment      float64  `json:"totalPayment"`
	Overpayment       float64  `json:"overpayment"`
	RemainingBalance  float64  `json:"remainingBalance"`
	CustomOverpayment *float64 `json:"customOverpayment,omitempty"`
}

// Summary aggregates the schedule's totals.
type Summary struct {
	MonthlyPayment        float64 `json:"monthlyPayment"`
	TotalInterest         float64 `json:"totalInterest"`
	TotalInterestBaseline float64 `json:"totalInterestWithoutOverpayment"`
	InterestSaved         float64 `json:"interestSaved"`
	TotalPaid             float64 `json:"totalPaid"`
	TotalOverpayments     float64 `json:"totalOverpayments"`
	ActualTermMonths      int     `json:"actualTermMonths"`
	OriginalTermMonths    int     `json:"originalTermMonths"`
}

// ScheduleData is the plain-data result handed to presentation code.
type ScheduleData struct {
	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

// Validation reports whether input is acceptable, with human-readable
// messages for everything that is not.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Service orchestrates validation and schedule generation.
type Service struct {
	generator *schedule.Generator
	logger    *zap.Logger
}

// NewService creates the adapter service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: schedule.NewGenerator(logger),
		logger:    logger,
	}
}

// ValidateLoanInput checks raw input and collects every violated rule. All
// primitive rules are checked even when earlier ones fail; the domain-level
// check runs only once the primitive rules all pass.
func (s *Service) ValidateLoanInput(in LoanInput) Validation {
	var errs []string

	if in.Amount <= 0 {
		errs = append(errs, "Loan amount must be positive")
	}
	if in.Amount < 1000 {
		errs = append(errs, "Loan amount must be at least 1,000 PLN")
	}
	if in.AnnualRatePercent < 0 {
		errs = append(errs, "Interest rate cannot be negative")
	}
	if in.AnnualRatePercent > 50 {
		errs = append(errs, "Interest rate seems unreasonably high")
	}
	if in.TermMonths <= 0 {
		errs = append(errs, "Loan term must be positive")
	}
	if in.TermMonths > 600 {
		errs = append(errs, "Loan term cannot exceed 50 years")
	}
	if _, err := period.Parse(in.StartDate); err != nil {
		errs = append(errs, "Valid start date is required")
	}

	if len(errs) == 0 {
		errs = append(errs, s.domainErrors(in)...)
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// domainErrors constructs the loan and applies business rules that only make
// sense on a valid domain object. Construction failures (non-finite values,
// principal above the hard cap) are reported as a validation message rather
// than propagated.
func (s *Service) domainErrors(in LoanInput) []string {
	l, err := s.buildLoan(in)
	if err != nil {
		return []string{"Invalid loan parameters"}
	}

	var errs []string
	if !l.IsValid() {
		errs = append(errs, "Invalid loan parameters")
	}

	installment, err := l.Installment()
	if err != nil {
		return append(errs, "Invalid loan parameters")
	}

	// Affordability heuristic: assume income near 10% of principal per month.
	incomeLimit, err := l.Principal().Multiply(0.1)
	if err == nil && installment.GreaterThan(incomeLimit) {
		errs = append(errs, "Monthly payment exceeds reasonable income limits")
	}

	return errs
}

// CalculateSchedule computes the full flattened schedule. It returns nil when
// the input fails validation or the engine rejects it; no error is ever
// propagated to presentation code.
func (s *Service) CalculateSchedule(loanIn LoanInput, overIn OverpaymentInput) *ScheduleData {
	if !s.quickCheck(loanIn) {
		return nil
	}

	l, err := s.buildLoan(loanIn)
	if err != nil {
		s.logger.Debug("loan construction rejected",
			zap.String("op", "planner.CalculateSchedule"),
			zap.Error(err),
		)
		return nil
	}

	plan, err := s.buildPlan(overIn)
	if err != nil {
		s.logger.Debug("overpayment plan rejected",
			zap.String("op", "planner.CalculateSchedule"),
			zap.Error(err),
		)
		return nil
	}

	result, err := s.generator.Generate(l, plan)
	if err != nil {
		s.logger.Error("schedule generation failed",
			zap.String("op", "planner.CalculateSchedule"),
			zap.Error(err),
		)
		return nil
	}

	return s.flatten(l, result)
}

// UpdateOverpayment applies a single-period override and regenerates the
// whole schedule. On any failure the previous result is returned unchanged,
// keeping the presentation layer stable.
func (s *Service) UpdateOverpayment(current *ScheduleData, loanIn LoanInput, overIn OverpaymentInput, month int, amount float64) *ScheduleData {
	l, err := s.buildLoan(loanIn)
	if err != nil {
		return current
	}

	plan, err := s.buildPlan(overIn)
	if err != nil {
		return current
	}

	override, err := money.New(amount)
	if err != nil {
		return current
	}

	updated, err := plan.WithCustom(month, override)
	if err != nil {
		return current
	}

	result, err := s.generator.Generate(l, updated)
	if err != nil {
		s.logger.Error("override recalculation failed",
			zap.String("op", "planner.UpdateOverpayment"),
			zap.Int("month", month),
			zap.Error(err),
		)
		return current
	}

	return s.flatten(l, result)
}

// MonthlyPayment computes the installment for display. The boolean reports
// whether the input produced a usable loan.
func (s *Service) MonthlyPayment(in LoanInput) (float64, bool) {
	if !s.quickCheck(in) {
		return 0, false
	}

	l, err := s.buildLoan(in)
	if err != nil {
		return 0, false
	}

	installment, err := l.Installment()
	if err != nil {
		return 0, false
	}
	return installment.Float64(), true
}

// quickCheck mirrors the cheap pre-validation used before any construction.
func (s *Service) quickCheck(in LoanInput) bool {
	if !mathutil.IsFinite(in.Amount) || !mathutil.IsFinite(in.AnnualRatePercent) {
		return false
	}
	if in.Amount <= 0 || in.AnnualRatePercent < 0 || in.TermMonths <= 0 {
		return false
	}
	_, err := period.Parse(in.StartDate)
	return err == nil
}

func (s *Service) buildLoan(in LoanInput) (loan.Loan, error) {
	principal, err := money.New(in.Amount)
	if err != nil {
		return loan.Loan{}, err
	}

	rate, err := interest.FromPercentage(in.AnnualRatePercent)
	if err != nil {
		return loan.Loan{}, err
	}

	term, err := loanterm.FromMonths(in.TermMonths)
	if err != nil {
		return loan.Loan{}, err
	}

	start, err := period.Parse(in.StartDate)
	if err != nil {
		return loan.Loan{}, err
	}

	style := loan.PaymentStyle(in.PaymentStyle)
	if in.PaymentStyle == "" {
		style = loan.StyleEqual
	}

	return loan.New(principal, rate, term, style, start)
}

func (s *Service) buildPlan(in OverpaymentInput) (loan.OverpaymentPlan, error) {
	base, err := money.New(in.BaseAmount)
	if err != nil {
		return loan.OverpaymentPlan{}, fmt.Errorf("base overpayment: %w", err)
	}

	effect := loan.OverpaymentEffect(in.Effect)
	if in.Effect == "" {
		effect = loan.EffectShortenTerm
	}

	return loan.NewOverpaymentPlan(base, effect, in.Custom), nil
}

func (s *Service) flatten(l loan.Loan, result *schedule.Result) *ScheduleData {
	rows := make([]Row, 0, len(result.Payments))
	for _, payment := range result.Payments {
		row := Row{
			Month:            payment.Month,
			Date:             payment.Date.String(),
			DateDisplay:      payment.Date.Display(),
			PrincipalPayment: payment.Principal.Float64(),
			InterestPayment:  payment.Interest.Float64(),
			TotalPayment:     payment.TotalPayment().Float64(),
			Overpayment:      payment.Overpayment.Float64(),
			RemainingBalance: payment.RemainingBalance.Float64(),
		}
		if payment.CustomOverpayment {
			overpayment := payment.Overpayment.Float64()
			row.CustomOverpayment = &overpayment
		}
		rows = append(rows, row)
	}

	monthly := 0.0
	if installment, err := l.Installment(); err == nil {
		monthly = installment.Float64()
	}

	return &ScheduleData{
		Rows: rows,
		Summary: Summary{
			MonthlyPayment:        monthly,
			TotalInterest:         result.TotalInterest.Float64(),
			TotalInterestBaseline: result.BaselineInterest.Float64(),
			InterestSaved:         result.InterestSaved.Float64(),
			TotalPaid:             result.TotalPaid.Float64(),
			TotalOverpayments:     result.TotalOverpaid.Float64(),
			ActualTermMonths:      result.ActualTerm.Months(),
			OriginalTermMonths:    result.OriginalTerm.Months(),
		},
	}
}
