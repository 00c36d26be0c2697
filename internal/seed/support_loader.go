package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kamakpos/m/domain"
	"kamakpos/m/pkg/logx"
)

// LoadSupportTickets ingests the CSV into the support_tickets table and
// returns the number of rows inserted. Ids are derived from the row so a
// second run inserts nothing.
//
// Columns: customerName, email, telephone, module, priority, message, user,
// status, createdOn (YYYY-MM-DD).
func LoadSupportTickets(db *sqlx.DB, csvPath string) int {
	file, err := os.Open(csvPath)
	if err != nil {
		logx.Warn().Err(err).Str("path", csvPath).Msg("unable to load support tickets")
		return 0
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		logx.Warn().Err(err).Msg("unable to read support ticket header")
		return 0
	}

	tx, err := db.Beginx()
	if err != nil {
		logx.Error().Err(err).Msg("unable to start support ticket transaction")
		return 0
	}
	stmt, err := tx.Preparex(tx.Rebind(`INSERT INTO support_tickets (id, customer_name, email, telephone, module, priority, message, user_name, status, created_on)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`))
	if err != nil {
		logx.Error().Err(err).Msg("unable to prepare support ticket insert")
		_ = tx.Rollback()
		return 0
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logx.Warn().Err(err).Msg("unable to read support ticket row")
			continue
		}
		if len(record) < 9 {
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		name, email, message := record[0], record[1], record[5]
		if name == "" || email == "" || message == "" {
			continue
		}
		created, err := time.Parse("2006-01-02", record[8])
		if err != nil {
			logx.Warn().Str("customer", name).Str("createdOn", record[8]).Msg("skipping support ticket with bad date")
			continue
		}
		status := record[7]
		if status == "" {
			status = domain.TicketStatusOpen
		}
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(record, "\x1f"))).String()

		res, err := stmt.Exec(id, name, email, record[2], record[3], record[4], message, record[6], status, created.UTC())
		if err != nil {
			logx.Warn().Err(err).Str("customer", name).Msg("unable to insert support ticket")
			continue
		}
		if n, _ := res.RowsAffected(); n > 0 {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		logx.Error().Err(err).Msg("unable to commit support ticket seed")
		return 0
	}
	logx.Info().Int("rows", rows).Msg("seeded support tickets")
	return rows
}
