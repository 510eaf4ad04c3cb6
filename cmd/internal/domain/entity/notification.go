package entity

type NotificationKind string

const (
	KindExpiring         NotificationKind = "expiring"
	KindExpiringUrgent   NotificationKind = "expiring_urgent"
	KindExpired          NotificationKind = "expired"
	KindDocumentsPending NotificationKind = "documents_pending"
)

// Notification is a rendered alert produced by the reconciliation
// checks. CedenteID is nullable: the owning cedente may be deleted
// later, which cascades the notification away.
type Notification struct {
	ID        int64            `gorm:"primaryKey"`
	CedenteID *int64           `gorm:"index"`
	Kind      NotificationKind `gorm:"not null;index"`
	Title     string           `gorm:"not null"`
	Message   string           `gorm:"not null"`
	IsRead    bool             `gorm:"not null;default:false;index"`
	// ExpiryDate snapshots the contract expiry that triggered the
	// notification, when there is one.
	ExpiryDate string
	CreatedAt  int64 `gorm:"not null;index"`

	// Relations
	Cedente *Cedente `gorm:"foreignKey:CedenteID;references:ID"`
}
