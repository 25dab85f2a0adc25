package mapping

import (
	"database/sql"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/models"
)

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func stringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// ToModelExpense converts a domain.Expense to its database model.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		SenderID:    d.SenderID,
		ReceiverID:  nullString(d.ReceiverID),
		Title:       d.Title,
		Category:    d.Category,
		Description: nullString(d.Description),
		Amount:      d.Amount,
		TransferID:  nullString(d.TransferID),
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a models.Expense to its domain representation.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		SenderID:    m.SenderID,
		ReceiverID:  stringOrEmpty(m.ReceiverID),
		Title:       m.Title,
		Category:    m.Category,
		Description: stringOrEmpty(m.Description),
		Amount:      m.Amount,
		TransferID:  stringOrEmpty(m.TransferID),
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelIncome converts a domain.Income to its database model.
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:    d.IncomeID,
		ReceiverID:  d.ReceiverID,
		SenderID:    nullString(d.SenderID),
		Title:       d.Title,
		Category:    d.Category,
		Description: nullString(d.Description),
		Amount:      d.Amount,
		TransferID:  nullString(d.TransferID),
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a models.Income to its domain representation.
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:    m.IncomeID,
		ReceiverID:  m.ReceiverID,
		SenderID:    stringOrEmpty(m.SenderID),
		Title:       m.Title,
		Category:    m.Category,
		Description: stringOrEmpty(m.Description),
		Amount:      m.Amount,
		TransferID:  stringOrEmpty(m.TransferID),
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
