package attendance

import (
	"testing"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFixedAssignmentWins(t *testing.T) {
	catalog, err := shift.NewCatalog([]shift.FixedShift{dayShift(t)}, nil)
	require.NoError(t, err)
	r := NewResolver(catalog)

	name := "GENERAL"
	res, err := r.Resolve(employee.Employee{ID: "EMP001", ShiftName: &name})

	require.NoError(t, err)
	require.NotNil(t, res.Fixed)
	assert.Equal(t, "GENERAL", res.Fixed.Name)
}

func TestResolveUnknownShiftNameFails(t *testing.T) {
	catalog, err := shift.NewCatalog(nil, nil)
	require.NoError(t, err)
	r := NewResolver(catalog)

	name := "NIGHT"
	_, err = r.Resolve(employee.Employee{ID: "EMP001", ShiftName: &name})

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestResolveWithoutAssignmentIsAuto(t *testing.T) {
	catalog, err := shift.NewCatalog(nil, nil)
	require.NoError(t, err)
	r := NewResolver(catalog)

	res, err := r.Resolve(employee.Employee{ID: "EMP001"})

	require.NoError(t, err)
	assert.Nil(t, res.Fixed)
}

func TestEligiblePunches(t *testing.T) {
	punches := []punch.Event{punchAt(5, 30), punchAt(8, 50), punchAt(17, 10)}

	t.Run("no carry-over keeps everything", func(t *testing.T) {
		got := eligiblePunches(punches, nil)
		assert.Len(t, got, 3)
	})

	t.Run("punches before the carried value are dropped", func(t *testing.T) {
		prev := tod(6, 0)
		got := eligiblePunches(punches, &prev)
		require.Len(t, got, 2)
		assert.Equal(t, tod(8, 50), got[0].Time)
	})

	t.Run("a punch equal to the carried value ends suppression", func(t *testing.T) {
		prev := tod(8, 50)
		got := eligiblePunches(punches, &prev)
		require.Len(t, got, 2)
		assert.Equal(t, tod(8, 50), got[0].Time)
	})

	t.Run("everything before the carried value is suppressed", func(t *testing.T) {
		prev := tod(23, 0)
		got := eligiblePunches(punches, &prev)
		assert.Empty(t, got)
	})
}

func TestOrchestratorConfigDefaults(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil, nil, nil, nil, OrchestratorConfig{}, nil)

	assert.Equal(t, 1, o.cfg.Workers)
	assert.Equal(t, 10*time.Second, o.cfg.UnitTimeout)
}
