package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sitebill/internal/domain/billing"
	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrSubscriptionNotFound = errors.New("subscription not found for this client")
	ErrInvalidReferenceDate = errors.New("invalid reference date")
	ErrInvalidPaidAt        = errors.New("invalid paidAt date")
)

// IReconciliationUseCase is the billing engine's entry point for callers.
//
//   - ClientPayments expands the client's current subscription into the
//     twelve monthly obligations of a year.
//   - ManualPay records an administrator override for one settlement bucket
//     (create-or-update, idempotent per month).
//   - Overview aggregates the current month across the whole portfolio.

type IReconciliationUseCase interface {
	ClientPayments(ctx context.Context, userID string, year int) ([]billing.Obligation, error)
	ManualPay(ctx context.Context, userID, referenceDate, paidAt string) (entities.Payment, error)
	Overview(ctx context.Context) (billing.Overview, error)
}

type ReconciliationUseCase struct {
	subscriptions interfaces.ISubscriptionRepository
	plans         interfaces.IPlanRepository
	payments      interfaces.IPaymentRepository

	// now is injectable so LATE vs PENDING is testable without wall-clock
	// races.
	now func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(subscriptions interfaces.ISubscriptionRepository, plans interfaces.IPlanRepository, payments interfaces.IPaymentRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		subscriptions: subscriptions,
		plans:         plans,
		payments:      payments,
		now:           time.Now,
	}
}

// ClientPayments returns the year's schedule for the user's most recent
// subscription. A user without a subscription or resolvable plan gets an
// empty schedule, which callers display as-is.
func (u *ReconciliationUseCase) ClientPayments(ctx context.Context, userID string, year int) ([]billing.Obligation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	sub, err := u.subscriptions.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub.ID == "" {
		log.Printf("[reconciliation][usecase] no subscription user_id=%s, empty schedule", userID)
		return []billing.Obligation{}, nil
	}

	plan, err := u.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.ID == "" {
		log.Printf("[reconciliation][usecase] no plan subscription_id=%s plan_id=%s, empty schedule", sub.ID, sub.PlanID)
		return []billing.Obligation{}, nil
	}

	payments, err := u.payments.ListBySubscriptionID(ctx, sub.ID)
	if err != nil {
		return nil, err
	}

	return billing.BuildSchedule(sub, &plan, payments, year, u.now()), nil
}

// ManualPay marks the settlement bucket of referenceDate as PAID for the
// user's current subscription. An existing payment in the bucket is updated
// in place; otherwise a new MANUAL payment is created with the plan's price.
// Repeated calls for the same month converge on a single PAID payment.
func (u *ReconciliationUseCase) ManualPay(ctx context.Context, userID, referenceDate, paidAt string) (entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Payment{}, ErrInvalidUserID
	}

	ref, ok := billing.ParseFlexibleDate(referenceDate)
	if !ok {
		return entities.Payment{}, ErrInvalidReferenceDate
	}

	now := u.now()
	paidAtDate := now
	if strings.TrimSpace(paidAt) != "" {
		paidAtDate, ok = billing.ParseFlexibleDate(paidAt)
		if !ok {
			return entities.Payment{}, ErrInvalidPaidAt
		}
	}

	sub, err := u.subscriptions.GetLatestByUserID(ctx, userID)
	if err != nil {
		return entities.Payment{}, err
	}
	if sub.ID == "" {
		return entities.Payment{}, ErrSubscriptionNotFound
	}

	plan, err := u.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		return entities.Payment{}, err
	}
	if plan.ID == "" {
		return entities.Payment{}, ErrSubscriptionNotFound
	}

	payments, err := u.payments.ListBySubscriptionID(ctx, sub.ID)
	if err != nil {
		return entities.Payment{}, err
	}

	annotation := map[string]interface{}{
		"manual":         true,
		"reference_date": referenceDate,
		"marked_at":      now.UTC().Format(time.RFC3339),
	}

	if existing := billing.FindInBucket(payments, ref.Year(), ref.Month()); existing != nil {
		log.Printf("[reconciliation][usecase] manual-pay update user_id=%s payment_id=%s bucket=%04d-%02d", userID, existing.ID, ref.Year(), int(ref.Month()))
		updated := *existing
		updated.Status = entities.PaymentStatusPaid
		updated.Provider = entities.PaymentProviderManual
		updated.PaidAt = &paidAtDate
		updated.Metadata = mergeMetadata(existing.Metadata, annotation)
		return u.payments.Update(ctx, updated)
	}

	log.Printf("[reconciliation][usecase] manual-pay create user_id=%s subscription_id=%s bucket=%04d-%02d", userID, sub.ID, ref.Year(), int(ref.Month()))
	p := entities.Payment{
		ID:             uuid.NewString(),
		SubscriptionID: sub.ID,
		AmountCents:    plan.PriceCents,
		Status:         entities.PaymentStatusPaid,
		Provider:       entities.PaymentProviderManual,
		TransactionID:  fmt.Sprintf("manual-%s-%04d-%02d-%s", sub.ID, ref.Year(), int(ref.Month()), uuid.NewString()),
		PaidAt:         &paidAtDate,
		CreatedAt:      now,
		Metadata:       annotation,
	}
	return u.payments.Create(ctx, p)
}

// Overview aggregates the current month across every billable subscription.
// Each subscription is snapshotted with its plan and full payment history
// before the pure aggregation runs.
func (u *ReconciliationUseCase) Overview(ctx context.Context) (billing.Overview, error) {
	subs, err := u.subscriptions.ListByStatuses(ctx, entities.BillableStatuses)
	if err != nil {
		return billing.Overview{}, err
	}

	planCache := make(map[string]entities.Plan)
	accounts := make([]billing.AccountSnapshot, 0, len(subs))

	for _, sub := range subs {
		snapshot := billing.AccountSnapshot{Subscription: sub}

		plan, ok := planCache[sub.PlanID]
		if !ok {
			plan, err = u.plans.GetByID(ctx, sub.PlanID)
			if err != nil {
				return billing.Overview{}, err
			}
			planCache[sub.PlanID] = plan
		}
		if plan.ID != "" {
			p := plan
			snapshot.Plan = &p
		}

		if snapshot.Plan != nil {
			snapshot.Payments, err = u.payments.ListBySubscriptionID(ctx, sub.ID)
			if err != nil {
				return billing.Overview{}, err
			}
		}

		accounts = append(accounts, snapshot)
	}

	return billing.ComputeOverview(accounts, u.now()), nil
}

func mergeMetadata(existing, annotation map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(annotation))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range annotation {
		merged[k] = v
	}
	return merged
}
