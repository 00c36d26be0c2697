package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kamakpos/m/internal/database"
	"kamakpos/m/internal/migrations"
)

const ticketsCSV = `customerName,email,telephone,module,priority,message,user,status,createdOn
Kofi Mensah,kofi@example.com,0244000000,POS,High,Receipt printer offline,ama,,2024-05-01
Ama Owusu,ama@example.com,0200000000,Inventory,Low,Stock count mismatch,yaw,Closed,2024-04-20
,missing@example.com,,,,No name,,,2024-04-20
Bad Date,bad@example.com,,,,Message,,,01/05/2024
Short,row
`

func TestLoadSupportTickets(t *testing.T) {
	db, err := database.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Run(db))

	path := filepath.Join(t.TempDir(), "tickets.csv")
	require.NoError(t, os.WriteFile(path, []byte(ticketsCSV), 0o600))

	assert.Equal(t, 2, LoadSupportTickets(db, path))
	assert.Equal(t, 0, LoadSupportTickets(db, path))

	var statuses []string
	require.NoError(t, db.Select(&statuses, `SELECT status FROM support_tickets ORDER BY customer_name`))
	assert.Equal(t, []string{"Closed", "Open"}, statuses)
}

func TestLoadSupportTicketsMissingFile(t *testing.T) {
	db, err := database.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 0, LoadSupportTickets(db, filepath.Join(t.TempDir(), "absent.csv")))
}
