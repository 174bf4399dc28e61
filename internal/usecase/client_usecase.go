package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"sitebill/internal/domain/billing"
	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingEmailOrSiteURL = errors.New("email and site url are required")
	ErrClientNotFound        = errors.New("client not found")
	ErrSiteNotFound          = errors.New("site not found")
	ErrInvalidDueDate        = errors.New("invalid due date")
	ErrInvalidSiteID         = errors.New("invalid site id")
)

// RegisterClientInput is the admin "cadastrar cliente" command.

type RegisterClientInput struct {
	Name         string
	Email        string
	SiteURL      string
	PlanName     string
	FirstDueDate string
}

// RegisteredClient is the projection returned after registration.

type RegisteredClient struct {
	User     entities.User
	Site     entities.Site
	PlanName string
}

// ClientListEntry is one row of the admin client listing (site + owner).

type ClientListEntry struct {
	User entities.User
	Site entities.Site
}

// ClientSummary is the client dashboard projection.

type ClientSummary struct {
	PlanName           string
	PriceCents         int64
	SubscriptionStatus entities.SubscriptionStatus
	CurrentPeriodEnd   time.Time
	SiteURL            string
	LastPayment        *entities.Payment
}

// IClientUseCase bundles the admin- and client-facing account operations
// around the billing engine: registration, listing, deletion, due-date
// management and site blocking.

type IClientUseCase interface {
	Register(ctx context.Context, in RegisterClientInput) (RegisteredClient, error)
	List(ctx context.Context) ([]ClientListEntry, error)
	Delete(ctx context.Context, userID string) error
	Summary(ctx context.Context, userID string) (ClientSummary, error)
	UpdateDueDate(ctx context.Context, userID, dueDate string) (entities.Subscription, error)
	BlockSite(ctx context.Context, siteID string) (entities.Site, error)
	UnblockSite(ctx context.Context, siteID string) (entities.Site, error)
}

type ClientUseCase struct {
	users         interfaces.IUserRepository
	sites         interfaces.ISiteRepository
	subscriptions interfaces.ISubscriptionRepository
	plans         interfaces.IPlanRepository
	payments      interfaces.IPaymentRepository

	now func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	users interfaces.IUserRepository,
	sites interfaces.ISiteRepository,
	subscriptions interfaces.ISubscriptionRepository,
	plans interfaces.IPlanRepository,
	payments interfaces.IPaymentRepository,
) *ClientUseCase {
	return &ClientUseCase{
		users:         users,
		sites:         sites,
		subscriptions: subscriptions,
		plans:         plans,
		payments:      payments,
		now:           time.Now,
	}
}

// Register ensures a CLIENT user for the email, creates the site, and, when
// a first due date is given, creates an initial subscription on the default
// plan. The subscription is a best-effort secondary effect: its failure is
// logged and reported nowhere else, the user+site create always stands.
func (u *ClientUseCase) Register(ctx context.Context, in RegisterClientInput) (RegisteredClient, error) {
	email := strings.TrimSpace(in.Email)
	siteURL := strings.TrimSpace(in.SiteURL)
	if email == "" || siteURL == "" {
		return RegisteredClient{}, ErrMissingEmailOrSiteURL
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return RegisteredClient{}, err
	}
	if user.ID == "" {
		user, err = u.users.Create(ctx, entities.User{
			ID:         uuid.NewString(),
			ExternalID: "admin-created-" + uuid.NewString(),
			Email:      email,
			Name:       strings.TrimSpace(in.Name),
			Role:       entities.UserRoleClient,
			CreatedAt:  u.now().UTC(),
		})
		if err != nil {
			return RegisteredClient{}, err
		}
	}

	site, err := u.sites.Create(ctx, entities.Site{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		URL:       siteURL,
		Status:    entities.SiteStatusActive,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return RegisteredClient{}, err
	}

	if strings.TrimSpace(in.FirstDueDate) != "" {
		if err := u.createInitialSubscription(ctx, user.ID, in.FirstDueDate); err != nil {
			// The primary create stands; the missing subscription surfaces
			// later through the empty schedule.
			log.Printf("[client][usecase] initial subscription failed user_id=%s err=%v", user.ID, err)
		}
	}

	planName := strings.TrimSpace(in.PlanName)
	if planName == "" {
		planName = "Plano Mensal"
	}
	return RegisteredClient{User: user, Site: site, PlanName: planName}, nil
}

func (u *ClientUseCase) createInitialSubscription(ctx context.Context, userID, firstDueDate string) error {
	dueDate, ok := billing.ParseFlexibleDate(firstDueDate)
	if !ok {
		return ErrInvalidDueDate
	}

	plan, err := ensureDefaultPlan(ctx, u.plans)
	if err != nil {
		return err
	}

	_, err = u.subscriptions.Create(ctx, entities.Subscription{
		ID:               uuid.NewString(),
		UserID:           userID,
		PlanID:           plan.ID,
		Status:           entities.SubscriptionStatusActive,
		CurrentPeriodEnd: dueDate,
		CreatedAt:        u.now().UTC(),
	})
	return err
}

// List returns every site joined with its owner, newest site first.
func (u *ClientUseCase) List(ctx context.Context) ([]ClientListEntry, error) {
	sites, err := u.sites.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(sites, func(i, j int) bool {
		return sites[i].CreatedAt.After(sites[j].CreatedAt)
	})

	entries := make([]ClientListEntry, 0, len(sites))
	for _, site := range sites {
		user, err := u.users.GetByID(ctx, site.UserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ClientListEntry{User: user, Site: site})
	}
	return entries, nil
}

// Delete removes the client and every dependent record: payments of all the
// client's subscriptions, the subscriptions, the sites and finally the user.
func (u *ClientUseCase) Delete(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrClientNotFound
	}

	subs, err := u.subscriptions.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := u.payments.DeleteBySubscriptionID(ctx, sub.ID); err != nil {
			return err
		}
	}
	if err := u.subscriptions.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := u.sites.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return u.users.Delete(ctx, userID)
}

// Summary builds the client dashboard view. Without a subscription or a
// resolvable plan it returns a placeholder plan due in a week, so test
// environments render something sensible.
func (u *ClientUseCase) Summary(ctx context.Context, userID string) (ClientSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ClientSummary{}, ErrInvalidUserID
	}

	site, err := u.sites.FirstByUserID(ctx, userID)
	if err != nil {
		return ClientSummary{}, err
	}

	sub, err := u.subscriptions.GetLatestByUserID(ctx, userID)
	if err != nil {
		return ClientSummary{}, err
	}

	var plan entities.Plan
	if sub.ID != "" {
		plan, err = u.plans.GetByID(ctx, sub.PlanID)
		if err != nil {
			return ClientSummary{}, err
		}
	}

	if sub.ID == "" || plan.ID == "" {
		return ClientSummary{
			PlanName:           "Plano de testes",
			PriceCents:         defaultPlanPriceCents,
			SubscriptionStatus: entities.SubscriptionStatusActive,
			CurrentPeriodEnd:   u.now().AddDate(0, 0, 7),
			SiteURL:            site.URL,
		}, nil
	}

	payments, err := u.payments.ListBySubscriptionID(ctx, sub.ID)
	if err != nil {
		return ClientSummary{}, err
	}

	var last *entities.Payment
	for i := range payments {
		if last == nil || payments[i].CreatedAt.After(last.CreatedAt) {
			last = &payments[i]
		}
	}

	return ClientSummary{
		PlanName:           plan.Name,
		PriceCents:         plan.PriceCents,
		SubscriptionStatus: sub.Status,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		SiteURL:            site.URL,
		LastPayment:        last,
	}, nil
}

// UpdateDueDate moves the anchor due date of the client's current
// subscription. A client without one gets a fresh ACTIVE subscription on the
// default plan anchored at the given date.
func (u *ClientUseCase) UpdateDueDate(ctx context.Context, userID, dueDate string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}

	parsed, ok := billing.ParseFlexibleDate(dueDate)
	if !ok {
		return entities.Subscription{}, ErrInvalidDueDate
	}

	sub, err := u.subscriptions.GetLatestByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}

	if sub.ID == "" {
		plan, err := ensureDefaultPlan(ctx, u.plans)
		if err != nil {
			return entities.Subscription{}, err
		}
		log.Printf("[client][usecase] due-date update creating subscription user_id=%s plan_id=%s", userID, plan.ID)
		return u.subscriptions.Create(ctx, entities.Subscription{
			ID:               uuid.NewString(),
			UserID:           userID,
			PlanID:           plan.ID,
			Status:           entities.SubscriptionStatusActive,
			CurrentPeriodEnd: parsed,
			CreatedAt:        u.now().UTC(),
		})
	}

	return u.subscriptions.UpdateCurrentPeriodEnd(ctx, sub.ID, parsed)
}

func (u *ClientUseCase) BlockSite(ctx context.Context, siteID string) (entities.Site, error) {
	return u.updateSiteStatus(ctx, siteID, entities.SiteStatusSuspended)
}

func (u *ClientUseCase) UnblockSite(ctx context.Context, siteID string) (entities.Site, error) {
	return u.updateSiteStatus(ctx, siteID, entities.SiteStatusActive)
}

func (u *ClientUseCase) updateSiteStatus(ctx context.Context, siteID string, status entities.SiteStatus) (entities.Site, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return entities.Site{}, ErrInvalidSiteID
	}

	site, err := u.sites.UpdateStatus(ctx, siteID, status)
	if err != nil {
		return entities.Site{}, err
	}
	if site.ID == "" {
		return entities.Site{}, ErrSiteNotFound
	}
	return site, nil
}
