package domain_test

import (
	"testing"

	"go-bookingdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Role
	}{
		{"ceo", domain.RoleCEO},
		{"CEO", domain.RoleCEO},
		{"  Hr ", domain.RoleHR},
		{"staff", domain.RoleStaff},
		{"", domain.RoleStaff},
		{"superadmin", domain.RoleStaff},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.NormalizeRole(tc.in), "input %q", tc.in)
	}
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, domain.RoleCEO.IsAdmin())
	assert.True(t, domain.RoleHR.IsAdmin())
	assert.False(t, domain.RoleStaff.IsAdmin())
}
