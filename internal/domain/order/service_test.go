package order

import "testing"

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero values fall back to defaults", 0, 0, 1, DefaultPageLimit},
		{"negative page clamps to first", -3, 10, 1, 10},
		{"oversized limit falls back to default", 1, 500, 1, DefaultPageLimit},
		{"in-range values pass through", 2, 50, 2, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := NormalizePagination(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("expected (%d, %d), got (%d, %d)", tc.wantPage, tc.wantLimit, page, limit)
			}
		})
	}
}
