package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newrayan/leads-service/internal/domain"
)

func validCandidate() domain.SubmissionCandidate {
	return domain.SubmissionCandidate{
		Name:            "Ahmed",
		PhoneNumber:     "99123456",
		SelectedService: "teeth-whitening",
	}
}

func TestValidate_ValidCandidatePasses(t *testing.T) {
	assert.Nil(t, Validate(validCandidate()))
}

func TestValidate_EmptyNameDoesNotShortCircuitOtherFields(t *testing.T) {
	errs := Validate(domain.SubmissionCandidate{
		Name:            "",
		PhoneNumber:     "123",
		SelectedService: "",
	})

	require.Len(t, errs, 3)
	assert.Equal(t, "الاسم مطلوب", errs["name"])
	assert.Contains(t, errs["phoneNumber"], "غير صحيح")
	assert.Equal(t, "يرجى اختيار الخدمة المطلوبة", errs["selectedService"])
}

func TestValidate_WhitespaceOnlyNameFailsRequired(t *testing.T) {
	candidate := validCandidate()
	candidate.Name = "   "

	errs := Validate(candidate)

	require.Len(t, errs, 1)
	assert.Equal(t, "الاسم مطلوب", errs["name"])
}

func TestValidate_PhoneFormats(t *testing.T) {
	accepted := []string{
		"99123456",
		"+96599123456",
		"96599123456",
		"099123456",
		"99 12 34 56",
		"9912-3456",
		"(965) 99123456",
	}
	for _, phone := range accepted {
		candidate := validCandidate()
		candidate.PhoneNumber = phone

		assert.Nilf(t, Validate(candidate), "expected %q to be accepted", phone)
	}

	rejected := []string{
		"123",
		"09123456",        // leading zero but only 7 digits after
		"01234567",        // first significant digit is 0
		"991234567",       // 9 digits, no recognized prefix
		"+96699123456",    // wrong country code
		"abcdefgh",
		"9912345678901234",
	}
	for _, phone := range rejected {
		candidate := validCandidate()
		candidate.PhoneNumber = phone

		errs := Validate(candidate)
		require.Lenf(t, errs, 1, "expected %q to be rejected", phone)
		assert.Contains(t, errs["phoneNumber"], "غير صحيح")
	}
}

func TestValidate_EmptyPhoneReportsRequiredNotFormat(t *testing.T) {
	candidate := validCandidate()
	candidate.PhoneNumber = "  "

	errs := Validate(candidate)

	require.Len(t, errs, 1)
	assert.Equal(t, "رقم الهاتف مطلوب", errs["phoneNumber"])
}

func TestValidate_UnknownServiceCodeIsAccepted(t *testing.T) {
	// The catalog is advisory; unknown codes must not be rejected.
	candidate := validCandidate()
	candidate.SelectedService = "veneers-2024"

	assert.Nil(t, Validate(candidate))
}

func TestValidate_IsDeterministic(t *testing.T) {
	candidate := domain.SubmissionCandidate{PhoneNumber: "12"}

	first := Validate(candidate)
	second := Validate(candidate)

	assert.Equal(t, first, second)
}

func TestCleanPhone_StripsSeparators(t *testing.T) {
	assert.Equal(t, "+96599123456", CleanPhone(" +965 (99) 123-456 "))
}
