package services

import (
	"encoding/json"
	"testing"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffSnapshotsMatchedName(t *testing.T) {
	from := []models.BCGPoint{{Name: "Alpha", RMS: 0.8, Growth: 8}}
	to := []models.BCGPoint{{Name: "Alpha", RMS: 1.2, Growth: 14}}

	records := DiffSnapshots(from, to)
	require.Len(t, records, 1)

	r := records[0]
	require.NotNil(t, r.From)
	require.NotNil(t, r.DRMS)
	require.NotNil(t, r.DGrowth)
	require.NotNil(t, r.QuadrantFrom)
	assert.InDelta(t, 0.4, *r.DRMS, 1e-9)
	assert.InDelta(t, 6.0, *r.DGrowth, 1e-9)
	assert.Equal(t, models.QuadrantCashCow, *r.QuadrantFrom)
	assert.Equal(t, models.QuadrantStar, r.QuadrantTo)
	assert.True(t, r.Changed)
}

func TestDiffSnapshotsNewName(t *testing.T) {
	records := DiffSnapshots(nil, []models.BCGPoint{{Name: "Nova", RMS: 0.5, Growth: 20}})
	require.Len(t, records, 1)

	r := records[0]
	assert.Nil(t, r.From)
	assert.Nil(t, r.DRMS)
	assert.Nil(t, r.DGrowth)
	assert.Nil(t, r.QuadrantFrom)
	assert.Equal(t, models.QuadrantQuestionMark, r.QuadrantTo)
	assert.False(t, r.Changed)
}

func TestDiffSnapshotsDrivenByToSide(t *testing.T) {
	from := []models.BCGPoint{
		{Name: "Kept", RMS: 1.1, Growth: 12},
		{Name: "Removed", RMS: 0.3, Growth: 2},
	}
	to := []models.BCGPoint{
		{Name: "New", RMS: 0.9, Growth: 11},
		{Name: "Kept", RMS: 1.3, Growth: 13},
	}

	records := DiffSnapshots(from, to)
	require.Len(t, records, len(to))
	// Output order follows the to collection; removed products never appear.
	assert.Equal(t, "New", records[0].Name)
	assert.Equal(t, "Kept", records[1].Name)
}

func TestDiffSnapshotsDuplicateFromNameLastWins(t *testing.T) {
	from := []models.BCGPoint{
		{Name: "Alpha", RMS: 0.5, Growth: 5},
		{Name: "Alpha", RMS: 2.0, Growth: 20},
	}
	to := []models.BCGPoint{{Name: "Alpha", RMS: 2.0, Growth: 20}}

	records := DiffSnapshots(from, to)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].DRMS)
	assert.InDelta(t, 0.0, *records[0].DRMS, 1e-9)
	assert.InDelta(t, 0.0, *records[0].DGrowth, 1e-9)
}

func TestDiffSnapshotsRecomputesQuadrants(t *testing.T) {
	// Stored quadrants are stale on purpose; the numbers must win.
	from := []models.BCGPoint{{Name: "Alpha", RMS: 1.5, Growth: 15, Quadrant: models.QuadrantDog}}
	to := []models.BCGPoint{{Name: "Alpha", RMS: 1.5, Growth: 15, Quadrant: models.QuadrantDog}}

	records := DiffSnapshots(from, to)
	require.Len(t, records, 1)
	assert.Equal(t, models.QuadrantStar, *records[0].QuadrantFrom)
	assert.Equal(t, models.QuadrantStar, records[0].QuadrantTo)
	assert.False(t, records[0].Changed)
}

func TestPointsFromSnapshot(t *testing.T) {
	payload, err := json.Marshal(models.BCGPayload{Points: []models.BCGPoint{
		{Name: "Alpha", RMS: 1.2, Growth: 14, Quadrant: models.QuadrantStar},
	}})
	require.NoError(t, err)

	snap := &models.Snapshot{Kind: "BCG", Payload: payload}
	points, err := PointsFromSnapshot(snap)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Alpha", points[0].Name)

	snap.Kind = "SWOT"
	_, err = PointsFromSnapshot(snap)
	assert.Error(t, err)
}
