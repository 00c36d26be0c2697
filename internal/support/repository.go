// Package support stores the customer support tickets raised from the
// terminal.
package support

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kamakpos/m/domain"
	"kamakpos/m/internal/core/errx"
)

const ticketColumns = `id, customer_name, email, telephone, module, priority, message, user_name, approver,
    status, sent, last_modified_by, last_modified_date, created_on`

// SearchParams filters tickets by a case-insensitive customer name
// substring and an inclusive created-on date range. Zero values are ignored.
type SearchParams struct {
	Customer string
	From     time.Time
	To       time.Time
}

type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func validate(t domain.SupportTicket) error {
	switch {
	case strings.TrimSpace(t.CustomerName) == "":
		return errx.Validation("customerName is required")
	case strings.TrimSpace(t.Email) == "" || !strings.Contains(t.Email, "@"):
		return errx.Validation("a valid email is required")
	case strings.TrimSpace(t.Message) == "":
		return errx.Validation("message is required")
	}
	return nil
}

// Create stores a new ticket. The id, creation time and default status are
// assigned here.
func (r *Repository) Create(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error) {
	if err := validate(t); err != nil {
		return domain.SupportTicket{}, err
	}
	t.ID = uuid.NewString()
	t.CreatedOn = r.now().UTC()
	t.LastModifiedDate = nil
	if strings.TrimSpace(t.Status) == "" {
		t.Status = domain.TicketStatusOpen
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO support_tickets (`+ticketColumns+`)
        VALUES (:id, :customer_name, :email, :telephone, :module, :priority, :message, :user_name, :approver,
        :status, :sent, :last_modified_by, :last_modified_date, :created_on)`, t)
	if err != nil {
		return domain.SupportTicket{}, errx.WrapSQL(err)
	}
	return t, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := r.db.GetContext(ctx, &t, r.db.Rebind(`SELECT `+ticketColumns+` FROM support_tickets WHERE id = ?`), id)
	if err != nil {
		return domain.SupportTicket{}, errx.WrapSQL(err)
	}
	return t, nil
}

// Update replaces the editable fields of a ticket and stamps the
// modification. The creation time never changes.
func (r *Repository) Update(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error) {
	if err := validate(t); err != nil {
		return domain.SupportTicket{}, err
	}
	existing, err := r.Get(ctx, t.ID)
	if err != nil {
		return domain.SupportTicket{}, err
	}
	now := r.now().UTC()
	t.CreatedOn = existing.CreatedOn
	t.LastModifiedDate = &now
	if strings.TrimSpace(t.Status) == "" {
		t.Status = existing.Status
	}
	_, err = r.db.NamedExecContext(ctx, `UPDATE support_tickets SET customer_name = :customer_name, email = :email,
        telephone = :telephone, module = :module, priority = :priority, message = :message, user_name = :user_name,
        approver = :approver, status = :status, sent = :sent, last_modified_by = :last_modified_by,
        last_modified_date = :last_modified_date WHERE id = :id`, t)
	if err != nil {
		return domain.SupportTicket{}, errx.WrapSQL(err)
	}
	return t, nil
}

// Search returns matching tickets, newest first.
func (r *Repository) Search(ctx context.Context, p SearchParams) ([]domain.SupportTicket, error) {
	var (
		clauses []string
		args    []any
	)
	if c := strings.TrimSpace(p.Customer); c != "" {
		clauses = append(clauses, "LOWER(customer_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(c)+"%")
	}
	if !p.From.IsZero() {
		clauses = append(clauses, "created_on >= ?")
		args = append(args, startOfDay(p.From))
	}
	if !p.To.IsZero() {
		clauses = append(clauses, "created_on < ?")
		args = append(args, startOfDay(p.To).AddDate(0, 0, 1))
	}

	query := `SELECT ` + ticketColumns + ` FROM support_tickets`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_on DESC"

	tickets := []domain.SupportTicket{}
	if err := r.db.SelectContext(ctx, &tickets, r.db.Rebind(query), args...); err != nil {
		return nil, errx.WrapSQL(err)
	}
	return tickets, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
