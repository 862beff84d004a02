// Package whatsapp composes wa.me deep links with localized message
// templates. Opening the link and persisting the contacted flag are
// independent actions; this package only builds the URL.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/internal/validation"
)

const clinicFooter = `عيادة نيو ريان للأسنان
الكويت - ترخيص وزارة الصحة رقم 211`

// DisplayPhone normalizes a raw phone value to the +965 display form:
// separators stripped, a single leading zero dropped, the country
// code added when missing.
func DisplayPhone(raw string) string {
	clean := validation.CleanPhone(raw)

	switch {
	case strings.HasPrefix(clean, "+965"):
		return clean
	case strings.HasPrefix(clean, "965"):
		return "+" + clean
	case strings.HasPrefix(clean, "0") && len(clean) == 9:
		return "+965" + clean[1:]
	default:
		return "+965" + clean
	}
}

// dialDigits keeps only digits and a leading plus, the characters
// wa.me accepts in the path.
func dialDigits(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BookingMessage is the visitor-side template: the new lead writes to
// the clinic to confirm an appointment.
func BookingMessage(sub *domain.Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "مرحباً، أنا %s\n", sub.Name)
	fmt.Fprintf(&b, "رقم الهاتف: %s\n", DisplayPhone(sub.PhoneNumber))
	fmt.Fprintf(&b, "الخدمة المطلوبة: %s\n", sub.ServiceLabel())
	if sub.Message != nil && *sub.Message != "" {
		fmt.Fprintf(&b, "رسالة إضافية: %s\n", *sub.Message)
	}
	b.WriteString("\nأرغب في حجز موعد في عيادة نيو ريان للأسنان.")

	return b.String()
}

// FollowUpMessage is the admin-side template: the clinic replies to a
// submission with its captured details.
func FollowUpMessage(sub *domain.Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "مرحباً %s،\n\n", sub.Name)
	b.WriteString("شكراً لتواصلك مع عيادة نيو ريان للأسنان.\n\n")
	b.WriteString("تفاصيل طلبك:\n")
	fmt.Fprintf(&b, "- الاسم: %s\n", sub.Name)
	fmt.Fprintf(&b, "- رقم الهاتف: %s\n", sub.PhoneNumber)
	fmt.Fprintf(&b, "- الخدمة المطلوبة: %s\n", sub.ServiceLabel())
	if sub.Message != nil && *sub.Message != "" {
		fmt.Fprintf(&b, "- رسالة إضافية: %s\n", *sub.Message)
	}
	b.WriteString("\nسيتم التواصل معك قريباً لتحديد موعد مناسب.\n\n")
	b.WriteString(clinicFooter)

	return b.String()
}

// BookingLink points the visitor at the clinic's business number with
// the booking message prefilled.
func BookingLink(businessNumber string, sub *domain.Submission) string {
	return Link(businessNumber, BookingMessage(sub))
}

// FollowUpLink points the operator at the submitter's number with the
// follow-up message prefilled.
func FollowUpLink(sub *domain.Submission) string {
	return Link(DisplayPhone(sub.PhoneNumber), FollowUpMessage(sub))
}

// Link builds a wa.me deep link for the given phone and message.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", dialDigits(phone), url.QueryEscape(message))
}
