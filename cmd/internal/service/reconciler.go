package service

import (
	"errors"
	"fmt"
	"time"

	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	FindUnread() ([]*entity.Notification, error)
	CountUnread() (int64, error)
	MarkRead(id int64) (bool, error)
	MarkAllRead() error
	DeleteReadBefore(cutoff int64) (int64, error)
}

// Notification retention for read rows, in days.
const readNotificationMaxAgeDays = 30

// Reconciler scans every cedente and creates the notifications that
// should exist: contract-expiry alerts at the 30/15/7-day boundaries
// plus one deduplicated pending-documents alert per incomplete
// cedente.
type Reconciler struct {
	CedenteRepo CedenteRepository
	NotifRepo   NotificationRepository
	Documents   DocumentChecker

	// now is swappable so tests can pin the calendar date.
	now func() time.Time
}

func NewReconciler(
	cedenteRepo CedenteRepository,
	notifRepo NotificationRepository,
	documents DocumentChecker,
) *Reconciler {
	return &Reconciler{
		CedenteRepo: cedenteRepo,
		NotifRepo:   notifRepo,
		Documents:   documents,
		now:         time.Now,
	}
}

// RunChecks executes both notification passes. Each pass aborts only
// on a whole-store failure; per-cedente problems are logged and the
// scan continues. The returned error aggregates pass-level failures so
// callers can report them, the next scheduled cycle retries anyway.
func (r *Reconciler) RunChecks() error {
	var errs []error

	if err := r.CheckContractExpiry(); err != nil {
		log.Errorf("contract expiry check failed: %v", err)
		errs = append(errs, err)
	}

	if err := r.CheckPendingDocuments(); err != nil {
		log.Errorf("pending documents check failed: %v", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CheckContractExpiry creates an expiry notification for every cedente
// whose contract hits one of the exact day boundaries today, and for
// every already-expired contract.
//
// There is no dedup here: a second run observing the same boundary
// creates a second notification. See DESIGN.md.
func (r *Reconciler) CheckContractExpiry() error {
	cedentes, err := r.CedenteRepo.FindAll()
	if err != nil {
		return fmt.Errorf("expiry pass aborted: %w", err)
	}

	today := utils.Truncate(r.now())
	for _, cedente := range cedentes {
		if cedente.ContractExpiry == "" {
			continue
		}

		expiry, err := utils.ParseDate(cedente.ContractExpiry)
		if err != nil {
			log.Warnf("cedente %d has malformed contract expiry %q, skipping", cedente.ID, cedente.ContractExpiry)
			continue
		}

		notification := classifyExpiry(cedente, utils.DaysBetween(today, expiry))
		if notification == nil {
			continue
		}

		if err := r.NotifRepo.Create(notification); err != nil {
			log.Errorf("failed to create %s notification for cedente %d: %v", notification.Kind, cedente.ID, err)
		}
	}
	return nil
}

// CheckPendingDocuments creates one pending-documents notification per
// incomplete cedente, skipping cedentes that already have an unread
// one. Running it twice in a row is a no-op.
func (r *Reconciler) CheckPendingDocuments() error {
	cedentes, err := r.CedenteRepo.FindAll()
	if err != nil {
		return fmt.Errorf("documents pass aborted: %w", err)
	}

	for _, cedente := range cedentes {
		complete, err := r.Documents.IsComplete(cedente.ID)
		if err != nil {
			// Lookup failures count as incomplete, the same as a
			// missing checklist row.
			log.Errorf("checklist lookup failed for cedente %d: %v", cedente.ID, err)
		}

		if complete {
			continue
		}

		unread, err := r.NotifRepo.FindUnread()
		if err != nil {
			log.Errorf("failed to fetch unread notifications: %v", err)
			continue
		}

		if hasUnreadPendingDocs(unread, cedente.ID) {
			continue
		}

		notification := &entity.Notification{
			CedenteID: &cedente.ID,
			Kind:      entity.KindDocumentsPending,
			Title:     "Pending documents",
			Message:   fmt.Sprintf("%s - documents incomplete", cedente.Name),
			CreatedAt: utils.NowUTC(),
		}

		if err := r.NotifRepo.Create(notification); err != nil {
			log.Errorf("failed to create documents_pending notification for cedente %d: %v", cedente.ID, err)
		}
	}
	return nil
}

// SweepReadNotifications drops read notifications older than the
// retention window.
func (r *Reconciler) SweepReadNotifications() {
	cutoff := r.now().UTC().AddDate(0, 0, -readNotificationMaxAgeDays).UnixMilli()
	removed, err := r.NotifRepo.DeleteReadBefore(cutoff)
	if err != nil {
		log.Errorf("failed to sweep old notifications: %v", err)
		return
	}

	if removed > 0 {
		log.Infof("swept %d read notifications older than %d days", removed, readNotificationMaxAgeDays)
	}
}

func classifyExpiry(cedente *entity.Cedente, daysRemaining int) *entity.Notification {
	var (
		kind    entity.NotificationKind
		title   string
		message string
	)

	switch {
	case daysRemaining == 30 || daysRemaining == 15:
		kind = entity.KindExpiring
		title = fmt.Sprintf("%d days to expiry", daysRemaining)
		message = fmt.Sprintf("%s - %s", cedente.Name, cedente.ContractExpiry)
	case daysRemaining == 7:
		kind = entity.KindExpiringUrgent
		title = "7 days to expiry"
		message = fmt.Sprintf("URGENT: %s - %s", cedente.Name, cedente.ContractExpiry)
	case daysRemaining < 0:
		kind = entity.KindExpired
		title = "Contract expired"
		message = fmt.Sprintf("%s - expired on %s", cedente.Name, cedente.ContractExpiry)
	default:
		return nil
	}

	return &entity.Notification{
		CedenteID:  &cedente.ID,
		Kind:       kind,
		Title:      title,
		Message:    message,
		ExpiryDate: cedente.ContractExpiry,
		CreatedAt:  utils.NowUTC(),
	}
}

func hasUnreadPendingDocs(unread []*entity.Notification, cedenteID int64) bool {
	for _, n := range unread {
		if n.Kind == entity.KindDocumentsPending && n.CedenteID != nil && *n.CedenteID == cedenteID {
			return true
		}
	}
	return false
}
