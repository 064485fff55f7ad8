package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestActionToEntity(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		row  Action
		want entities.ActionRecord
	}{
		{
			name: "applied",
			row: Action{
				ID: 1, SuborderID: 100, Action: "pickup", ActorRole: "rider", ActorID: 7,
				FromStatus: "assigned", ToStatus: sql.NullString{String: "picked", Valid: true},
				Outcome: "applied", CreatedAt: at,
			},
			want: entities.ActionRecord{
				ID: 1, SuborderID: 100, Action: "pickup", ActorRole: entities.RoleRider, ActorID: 7,
				FromStatus: "assigned", ToStatus: "picked", Outcome: entities.OutcomeApplied, CreatedAt: at,
			},
		},
		{
			name: "rejected keeps the reason",
			row: Action{
				ID: 2, SuborderID: 100, Action: "deliver", ActorRole: "rider", ActorID: 7,
				FromStatus: "in_transit", Outcome: "rejected",
				Error: sql.NullString{String: "rider is outside of the geofence", Valid: true}, CreatedAt: at,
			},
			want: entities.ActionRecord{
				ID: 2, SuborderID: 100, Action: "deliver", ActorRole: entities.RoleRider, ActorID: 7,
				FromStatus: "in_transit", Outcome: entities.OutcomeRejected,
				Error: "rider is outside of the geofence", CreatedAt: at,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActionToEntity(tc.row))
		})
	}
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))
}
