package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycastapp/locsync/models"
)

func saveChange(name string) models.PendingChange {
	return models.PendingChange{
		Kind:     models.SaveChange,
		RecordID: models.RecordID{Zone: models.DefaultZone, Name: name},
	}
}

func deleteChange(name string) models.PendingChange {
	return models.PendingChange{
		Kind:     models.DeleteChange,
		RecordID: models.RecordID{Zone: models.DefaultZone, Name: name},
	}
}

func TestPendingChangeQueue_Supersede(t *testing.T) {
	q := NewPendingChangeQueue()

	q.Enqueue([]models.PendingChange{saveChange("a")}, nil)
	q.Enqueue([]models.PendingChange{saveChange("a")}, nil)

	assert.Equal(t, 1, q.Len(), "same (kind, record) pair must supersede, not duplicate")

	// a delete for the same record is a different kind and coexists
	q.Enqueue([]models.PendingChange{deleteChange("a")}, nil)
	assert.Equal(t, 2, q.Len())
}

func TestPendingChangeQueue_DatabaseChangeDedup(t *testing.T) {
	q := NewPendingChangeQueue()
	zoneCreate := models.DatabaseChange{Kind: models.CreateZoneChange, Zone: models.DefaultZone}

	q.Enqueue(nil, []models.DatabaseChange{zoneCreate})
	q.Enqueue(nil, []models.DatabaseChange{zoneCreate})

	_, database := q.Pending(models.BatchScope{})
	assert.Equal(t, []models.DatabaseChange{zoneCreate}, database)
}

func TestPendingChangeQueue_PendingIsScopedAndSorted(t *testing.T) {
	q := NewPendingChangeQueue()
	otherZone := models.PendingChange{
		Kind:     models.SaveChange,
		RecordID: models.RecordID{Zone: "OtherZone", Name: "x"},
	}
	q.Enqueue([]models.PendingChange{saveChange("b"), deleteChange("a"), saveChange("a"), otherZone}, nil)

	changes, _ := q.Pending(models.BatchScope{Zone: models.DefaultZone})
	require.Len(t, changes, 3)
	assert.Equal(t, []models.PendingChange{saveChange("a"), deleteChange("a"), saveChange("b")}, changes)

	// zero scope matches everything
	all, _ := q.Pending(models.BatchScope{})
	assert.Len(t, all, 4)

	// Pending does not drain the queue
	assert.Equal(t, 4, q.Len())
}

func TestPendingChangeQueue_Remove(t *testing.T) {
	q := NewPendingChangeQueue()
	q.Enqueue([]models.PendingChange{saveChange("a"), deleteChange("a")}, nil)

	q.Remove(models.SaveChange, models.RecordID{Zone: models.DefaultZone, Name: "a"})

	changes, _ := q.Pending(models.BatchScope{})
	require.Len(t, changes, 1)
	assert.Equal(t, models.DeleteChange, changes[0].Kind)

	// removing an absent pair is a no-op
	q.Remove(models.SaveChange, models.RecordID{Zone: models.DefaultZone, Name: "missing"})
	assert.Equal(t, 1, q.Len())
}

func TestPendingChangeQueue_RemoveDatabaseChange(t *testing.T) {
	q := NewPendingChangeQueue()
	zoneCreate := models.DatabaseChange{Kind: models.CreateZoneChange, Zone: models.DefaultZone}
	q.Enqueue(nil, []models.DatabaseChange{zoneCreate})

	q.RemoveDatabaseChange(zoneCreate)

	_, database := q.Pending(models.BatchScope{})
	assert.Empty(t, database)
}

func TestPendingChangeQueue_Clear(t *testing.T) {
	q := NewPendingChangeQueue()
	q.Enqueue(
		[]models.PendingChange{saveChange("a"), deleteChange("b")},
		[]models.DatabaseChange{{Kind: models.CreateZoneChange, Zone: models.DefaultZone}},
	)

	q.Clear()

	changes, database := q.Pending(models.BatchScope{})
	assert.Empty(t, changes)
	assert.Empty(t, database)
	assert.Equal(t, 0, q.Len())
}
