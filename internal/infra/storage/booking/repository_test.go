package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

func TestListQuery(t *testing.T) {
	confirmed := domain.StatusConfirmed

	tests := []struct {
		name      string
		filter    domain.BookingsFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "all bookings",
			filter:    domain.BookingsFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "by status",
			filter:    domain.BookingsFilter{Status: &confirmed},
			wantWhere: "WHERE status = $1",
			wantArgs:  []interface{}{domain.StatusConfirmed},
		},
		{
			name:      "active only",
			filter:    domain.BookingsFilter{ActiveOnly: true},
			wantWhere: "WHERE status IN ($1,$2)",
			wantArgs:  []interface{}{"pending", "confirmed"},
		},
		{
			name:      "status wins over active flag",
			filter:    domain.BookingsFilter{Status: &confirmed, ActiveOnly: true},
			wantWhere: "WHERE status = $1",
			wantArgs:  []interface{}{domain.StatusConfirmed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listQuery(tt.filter).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, "FROM bookings")
			assert.Contains(t, query, "ORDER BY created_at DESC")
			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, tt.wantWhere)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
