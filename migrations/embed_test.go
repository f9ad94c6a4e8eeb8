package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_salon_schedule.sql", "00002_create_appointments.sql"}, files)

	schedule, err := fs.ReadFile(FS, "00001_create_salon_schedule.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schedule), "ux_salon_schedule_closed_date")
	assert.Contains(t, string(schedule), "ux_salon_schedule_day_off_singleton")
}
