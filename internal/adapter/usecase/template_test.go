package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outreach/internal/core/domain"
)

func TestSubstitute(t *testing.T) {
	values := map[string]string{"BusinessName": "Acme", "City": "Austin", "State": "TX", "Category": "Dentist"}

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "Hi {{BusinessName}} of {{City}}, {{State}}", "Hi Acme of Austin, TX"},
		{"case insensitive", "{{businessname}} / {{CITY}}", "Acme / Austin"},
		{"misspelled business", "{{BussinessName}} {{Bussiness_Name}} {{Business_Name}} {{BusinessNmae}}", "Acme Acme Acme Acme"},
		{"unknown token", "Dear {{FirstName}},", "Dear ,"},
		{"repeated", "{{Category}}{{Category}}", "DentistDentist"},
		{"inner spaces", "{{ City }}", "Austin"},
		{"not a token", "{City} {{}} {{1abc}}", "{City} {{}} {{1abc}}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Substitute(tc.in, values))
		})
	}
}

// TestSubstituteSinglePass does not expand placeholders found in values.
func TestSubstituteSinglePass(t *testing.T) {
	got := Substitute("{{BusinessName}}", map[string]string{"BusinessName": "{{City}}", "City": "Austin"})
	assert.Equal(t, "{{City}}", got)
}

func TestLeadValuesDefaultsBusinessName(t *testing.T) {
	assert.Equal(t, "Valued Customer", LeadValues(domain.Lead{BusinessName: "  "})["BusinessName"])
	assert.Equal(t, "Acme", LeadValues(domain.Lead{BusinessName: "Acme"})["BusinessName"])
}
