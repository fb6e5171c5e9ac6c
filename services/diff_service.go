package services

import (
	"encoding/json"
	"fmt"

	"github.com/afrazja/bizanalysis-backend/models"
)

// DiffSnapshots compares two point collections by name. Output is ordered
// by the to side and has exactly one record per to point; names present
// only in from (removed products) are not emitted. When a name repeats
// within from, the last occurrence wins in the lookup. Quadrants are
// recomputed from the raw numbers on both sides so stale stored quadrant
// fields can never leak into the comparison.
func DiffSnapshots(from, to []models.BCGPoint) []models.DiffRecord {
	lookup := make(map[string]models.BCGPoint, len(from))
	for _, p := range from {
		lookup[p.Name] = p
	}

	records := make([]models.DiffRecord, 0, len(to))
	for _, np := range to {
		np := np
		qTo := Classify(np.RMS, np.Growth)

		op, ok := lookup[np.Name]
		if !ok {
			records = append(records, models.DiffRecord{
				Name:       np.Name,
				To:         &np,
				QuadrantTo: qTo,
			})
			continue
		}

		op2 := op
		drms := np.RMS - op.RMS
		dgrowth := np.Growth - op.Growth
		qFrom := Classify(op.RMS, op.Growth)
		records = append(records, models.DiffRecord{
			Name:         np.Name,
			From:         &op2,
			To:           &np,
			DRMS:         &drms,
			DGrowth:      &dgrowth,
			QuadrantFrom: &qFrom,
			QuadrantTo:   qTo,
			Changed:      qFrom != qTo,
		})
	}
	return records
}

// PointsFromSnapshot extracts the point set of a BCG snapshot payload.
func PointsFromSnapshot(snap *models.Snapshot) ([]models.BCGPoint, error) {
	if snap.Kind != "BCG" {
		return nil, fmt.Errorf("snapshot %s has kind %s, want BCG", snap.ID, snap.Kind)
	}
	var payload models.BCGPayload
	if err := json.Unmarshal(snap.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode snapshot %s payload: %w", snap.ID, err)
	}
	return payload.Points, nil
}
