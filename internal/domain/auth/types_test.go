package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []Role
		required []Role
		want     bool
	}{
		{name: "direct match", roles: []Role{RoleUser}, required: []Role{RoleUser}, want: true},
		{name: "any of several", roles: []Role{RoleUser}, required: []Role{RoleAdmin, RoleUser}, want: true},
		{name: "admin does not imply user", roles: []Role{RoleAdmin}, required: []Role{RoleUser}, want: false},
		{name: "no roles", roles: nil, required: []Role{RoleUser}, want: false},
		{name: "no requirement", roles: []Role{RoleUser}, required: nil, want: false},
		{name: "orphaned role satisfies nothing", roles: []Role{"ROLE_RETIRED"}, required: []Role{RoleUser, RoleAdmin}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{UserID: "user-1", Roles: tt.roles}
			assert.Equal(t, tt.want, p.HasAnyRole(tt.required...))
		})
	}
}
