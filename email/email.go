package email

import (
	"net/url"
	"strings"

	"github.com/carfinder/site/vehicle"
)

// InquirySubject is the subject line of a "Contact Seller" email.
func InquirySubject(v vehicle.Vehicle) string {
	return "Inquiry about " + v.Title()
}

// InquiryLink returns a mailto: URL addressed to to with the inquiry subject
// for v filled in.
func InquiryLink(to string, v vehicle.Vehicle) string {
	// Mail clients do not decode "+" in mailto headers.
	subject := strings.ReplaceAll(url.QueryEscape(InquirySubject(v)), "+", "%20")
	return "mailto:" + to + "?subject=" + subject
}
