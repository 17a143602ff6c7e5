package postgres

import (
	"strings"
	"testing"

	"github.com/mvdutta/honey-rae-server/internal/repository"
)

func TestBuildTicketWhere(t *testing.T) {
	tests := []struct {
		name     string
		f        repository.TicketFilter
		wantSQL  []string
		wantArgs int
	}{
		{
			name:     "empty filter",
			f:        repository.TicketFilter{},
			wantSQL:  []string{"1=1"},
			wantArgs: 0,
		},
		{
			name:     "customer scope",
			f:        repository.TicketFilter{CustomerID: "c1"},
			wantSQL:  []string{"t.customer_id = $1"},
			wantArgs: 1,
		},
		{
			name:     "done",
			f:        repository.TicketFilter{Status: "done"},
			wantSQL:  []string{"t.date_completed IS NOT NULL"},
			wantArgs: 0,
		},
		{
			name:     "unclaimed",
			f:        repository.TicketFilter{Status: "unclaimed"},
			wantSQL:  []string{"t.employee_id IS NULL"},
			wantArgs: 0,
		},
		{
			name:     "inprogress",
			f:        repository.TicketFilter{Status: "inprogress"},
			wantSQL:  []string{"t.employee_id IS NOT NULL AND t.date_completed IS NULL"},
			wantArgs: 0,
		},
		{
			name:     "unrecognized status ignored",
			f:        repository.TicketFilter{Status: "garbage"},
			wantSQL:  []string{"1=1"},
			wantArgs: 0,
		},
		{
			name:     "search",
			f:        repository.TicketFilter{Search: "heater"},
			wantSQL:  []string{"t.description LIKE $1"},
			wantArgs: 1,
		},
		{
			name:     "composed",
			f:        repository.TicketFilter{CustomerID: "c1", Status: "done", Search: "heater"},
			wantSQL:  []string{"t.customer_id = $1", "t.date_completed IS NOT NULL", "t.description LIKE $2"},
			wantArgs: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildTicketWhere(tt.f)
			for _, want := range tt.wantSQL {
				if !strings.Contains(sql, want) {
					t.Errorf("where = %q, missing %q", sql, want)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildTicketWhereSearchPattern(t *testing.T) {
	_, args := buildTicketWhere(repository.TicketFilter{Search: "heater"})
	if len(args) != 1 || args[0] != "%heater%" {
		t.Fatalf("args = %v, want [%%heater%%]", args)
	}
}
