package staff_test

import (
	"testing"

	"opsworker/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
)

func TestEmployee(t *testing.T) {
	t.Run("should prefer the whatsapp number", func(t *testing.T) {
		e := staff.Employee{WhatsApp: "0812-3456-789", MobilePhone: "0899"}
		assert.Equal(t, "628123456789", e.Phone())
	})

	t.Run("should fall back to the mobile number", func(t *testing.T) {
		e := staff.Employee{MobilePhone: "+62 899 1"}
		assert.Equal(t, "628991", e.Phone())
	})

	t.Run("no number yields empty", func(t *testing.T) {
		assert.Empty(t, staff.Employee{}.Phone())
	})

	t.Run("status checks", func(t *testing.T) {
		assert.True(t, staff.Employee{ActiveStatus: "Active"}.IsActive())
		assert.False(t, staff.Employee{ActiveStatus: "Inactive"}.IsActive())
		assert.True(t, staff.Employee{JoinStatus: "Internship"}.IsIntern())
	})
}
