package domain

import "time"

const TicketStatusOpen = "Open"

// SupportTicket is a customer support request logged from the terminal.
type SupportTicket struct {
	ID               string     `db:"id" json:"id"`
	CustomerName     string     `db:"customer_name" json:"customerName"`
	Email            string     `db:"email" json:"email"`
	Telephone        string     `db:"telephone" json:"telephone"`
	Module           string     `db:"module" json:"module"`
	Priority         string     `db:"priority" json:"priority"`
	Message          string     `db:"message" json:"message"`
	User             string     `db:"user_name" json:"user"`
	Approver         string     `db:"approver" json:"approver"`
	Status           string     `db:"status" json:"status"`
	Sent             bool       `db:"sent" json:"sent"`
	LastModifiedBy   string     `db:"last_modified_by" json:"lastModifiedBy"`
	LastModifiedDate *time.Time `db:"last_modified_date" json:"lastModifiedDate,omitempty"`
	CreatedOn        time.Time  `db:"created_on" json:"createdOn"`
}
