package mapping

import (
	"database/sql"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/models"
)

// ToModelSubscription converts a domain.Subscription to its database model.
func ToModelSubscription(d domain.Subscription) models.Subscription {
	m := models.Subscription{
		SubscriptionID: d.SubscriptionID,
		UserID:         d.UserID,
		Name:           d.Name,
		Category:       d.Category,
		Description:    nullString(d.Description),
		Amount:         d.Amount,
		Status:         models.SubscriptionStatus(d.Status),
		StartDate:      d.StartDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.EndDate != nil {
		m.EndDate = sql.NullTime{Time: *d.EndDate, Valid: true}
	}
	return m
}

// ToDomainSubscription converts a models.Subscription to its domain representation.
func ToDomainSubscription(m models.Subscription) domain.Subscription {
	d := domain.Subscription{
		SubscriptionID: m.SubscriptionID,
		UserID:         m.UserID,
		Name:           m.Name,
		Category:       m.Category,
		Description:    stringOrEmpty(m.Description),
		Amount:         m.Amount,
		Status:         domain.SubscriptionStatus(m.Status),
		StartDate:      m.StartDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.EndDate.Valid {
		t := m.EndDate.Time
		d.EndDate = &t
	}
	return d
}
