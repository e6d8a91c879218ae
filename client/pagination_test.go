package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageControls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Pagination
		want PageControls
	}{
		{
			name: "single page hides the pager",
			p:    Pagination{Page: 1, TotalPages: 1},
			want: PageControls{Page: 1, TotalPages: 1, Visible: false, PrevEnabled: false, NextEnabled: false},
		},
		{
			name: "empty list still has page one",
			p:    Pagination{Page: 1, TotalPages: 0},
			want: PageControls{Page: 1, TotalPages: 1, Visible: false, PrevEnabled: false, NextEnabled: false},
		},
		{
			name: "first of many",
			p:    Pagination{Page: 1, TotalPages: 3},
			want: PageControls{Page: 1, TotalPages: 3, Visible: true, PrevEnabled: false, NextEnabled: true},
		},
		{
			name: "middle page",
			p:    Pagination{Page: 2, TotalPages: 3},
			want: PageControls{Page: 2, TotalPages: 3, Visible: true, PrevEnabled: true, NextEnabled: true},
		},
		{
			name: "last page",
			p:    Pagination{Page: 3, TotalPages: 3},
			want: PageControls{Page: 3, TotalPages: 3, Visible: true, PrevEnabled: true, NextEnabled: false},
		},
		{
			name: "out of range clamps to last",
			p:    Pagination{Page: 9, TotalPages: 3},
			want: PageControls{Page: 3, TotalPages: 3, Visible: true, PrevEnabled: true, NextEnabled: false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewPageControls(tt.p))
		})
	}
}
