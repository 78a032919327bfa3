package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

const sampleCSV = `date,user_id,variant,channel,segment,step
2025-06-01,s1,control,web,new_user,impression
2025-06-01,s2,test,web,new_user,impression
`

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dataDir := t.TempDir()
	samplePath := filepath.Join(dataDir, "sample_events.csv")
	require.NoError(t, os.WriteFile(samplePath, []byte(sampleCSV), 0o644))

	store, err := NewStore(dataDir, samplePath, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestStore_ActiveFallsBackToSample(t *testing.T) {
	store := newTestStore(t)

	table, err := store.Active()

	assert.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "s1", table[0].UserID)
}

func TestStore_PromoteReplacesActiveDataset(t *testing.T) {
	store := newTestStore(t)
	promoted := domain.EventTable{
		{Date: "2025-07-01", UserID: "p1", Variant: "test", Channel: "email", Segment: "returning", Step: domain.StepApprove},
	}

	err := store.Promote(promoted)
	assert.NoError(t, err)

	table, err := store.Active()
	assert.NoError(t, err)
	assert.Equal(t, promoted, table)
}

func TestStore_ResetRestoresSample(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Promote(domain.EventTable{
		{Date: "2025-07-01", UserID: "p1", Variant: "test", Channel: "email", Segment: "returning", Step: domain.StepApprove},
	}))

	err := store.Reset()
	assert.NoError(t, err)

	table, err := store.Active()
	assert.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "s1", table[0].UserID)
}

func TestStore_ResetWithoutCurrentDataset(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Reset())
}

func TestStore_SaveUploadKeepsOriginalsApart(t *testing.T) {
	store := newTestStore(t)

	first, err := store.SaveUpload("events.csv", strings.NewReader("a"))
	assert.NoError(t, err)
	second, err := store.SaveUpload("events.csv", strings.NewReader("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_events.csv"))

	content, err := os.ReadFile(first)
	assert.NoError(t, err)
	assert.Equal(t, "a", string(content))
}
