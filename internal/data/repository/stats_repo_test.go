package repository

import (
	"strings"
	"testing"
	"time"
)

func TestBuildGroupQuery(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		dim      GroupDimension
		window   TimeWindow
		contains []string
		absent   []string
		args     int
	}{
		{
			name:     "all has no group by",
			dim:      GroupAll,
			contains: []string{"status = 'CONFIRMED'", "COUNT(*)"},
			absent:   []string{"GROUP BY", "updated_at >="},
		},
		{
			name:     "currency defaults missing to UNKNOWN",
			dim:      GroupByCurrency,
			contains: []string{"'UNKNOWN'", "GROUP BY 1"},
		},
		{
			name:     "package groups by reference",
			dim:      GroupByPackage,
			contains: []string{"SELECT package_id,", "GROUP BY 1"},
		},
		{
			name:     "month and currency with both bounds",
			dim:      GroupByMonthCurrency,
			window:   TimeWindow{From: &from, To: &to},
			contains: []string{"'YYYY-MM'", "GROUP BY 1, 2", "updated_at >= $1", "updated_at < $2"},
			args:     2,
		},
		{
			name:     "upper bound only",
			dim:      GroupByMonthCurrency,
			window:   TimeWindow{To: &to},
			contains: []string{"updated_at < $1"},
			absent:   []string{"updated_at >="},
			args:     1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := buildGroupQuery(tc.dim, tc.window)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range tc.contains {
				if !strings.Contains(query, s) {
					t.Fatalf("expected %q in query %q", s, query)
				}
			}
			for _, s := range tc.absent {
				if strings.Contains(query, s) {
					t.Fatalf("did not expect %q in query %q", s, query)
				}
			}
			if len(args) != tc.args {
				t.Fatalf("expected %d args, got %d", tc.args, len(args))
			}
		})
	}

	t.Run("unknown dimension", func(t *testing.T) {
		if _, _, err := buildGroupQuery(GroupDimension(42), TimeWindow{}); err == nil {
			t.Fatalf("expected error for unknown dimension")
		}
	})
}
