package leave

import (
	"strings"
	"testing"
)

func TestSubmitRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr bool
	}{
		{
			name: "valid with reason",
			req:  SubmitRequest{Type: "SICK", StartDate: "2026-01-10", EndDate: "2026-01-12", Reason: "flu"},
		},
		{
			name: "valid without reason",
			req:  SubmitRequest{Type: "SICK", StartDate: "2026-01-10", EndDate: "2026-01-12"},
		},
		{
			name:    "unknown type",
			req:     SubmitRequest{Type: "SABBATICAL", StartDate: "2026-01-10", EndDate: "2026-01-12"},
			wantErr: true,
		},
		{
			name:    "unparseable start date",
			req:     SubmitRequest{Type: "CASUAL", StartDate: "10-01-2026", EndDate: "2026-01-12"},
			wantErr: true,
		},
		{
			name:    "end before start",
			req:     SubmitRequest{Type: "CASUAL", StartDate: "2026-01-12", EndDate: "2026-01-10"},
			wantErr: true,
		},
		{
			name:    "reason too long",
			req:     SubmitRequest{Type: "CASUAL", StartDate: "2026-01-10", EndDate: "2026-01-12", Reason: strings.Repeat("x", 1001)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
