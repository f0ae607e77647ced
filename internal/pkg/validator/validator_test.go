package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"user+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 3, int(date.Month()))
	assert.Equal(t, 10, date.Day())

	_, ok = IsValidDate("10-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "absent", "half-day", "leave"}
	assert.True(t, IsInSlice("present", statuses))
	assert.True(t, IsInSlice("half-day", statuses))
	assert.False(t, IsInSlice("holiday", statuses))
	assert.False(t, IsInSlice("", statuses))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("admin"))
	assert.True(t, IsValidUsername("john.doe_01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "must be positive"},
	}

	assert.Equal(t, "month: must be between 1 and 12; year: must be positive", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "must be positive", m["year"])
}
