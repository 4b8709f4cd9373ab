package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "standard", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding whitespace", header: "Bearer   abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "absent", header: "", want: ""},
		{name: "basic scheme", header: "Basic YWxpY2U6aHVudGVyMg==", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "scheme with trailing space only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(r))
		})
	}
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantLimit: 20, wantOffset: 0},
		{name: "explicit", query: "?limit=5&offset=10", wantLimit: 5, wantOffset: 10},
		{name: "clamped to max", query: "?limit=9999", wantLimit: 100, wantOffset: 0},
		{name: "zero limit floored", query: "?limit=0", wantLimit: 1, wantOffset: 0},
		{name: "negative offset floored", query: "?offset=-3", wantLimit: 20, wantOffset: 0},
		{name: "garbage ignored", query: "?limit=abc&offset=xyz", wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/"+tt.query, nil)
			lim, off := ParseLimitOffset(r, 20, 100)
			assert.Equal(t, tt.wantLimit, lim)
			assert.Equal(t, tt.wantOffset, off)
		})
	}
}
