package appointment

import (
	"net/url"
	"strings"
	"time"
)

const whatsAppBaseURL = "https://wa.me/"

// Confirmation is what the customer sends the business over WhatsApp to confirm a hold.
type Confirmation struct {
	Text         string
	WhatsAppLink string
}

// BuildConfirmation renders the es-AR message (d/m/yyyy, 24 h clock) for start in loc.
// An empty businessPhone yields a wa.me link without a recipient.
func BuildConfirmation(fullName, serviceName string, start time.Time, loc *time.Location, notes Notes, businessPhone string) Confirmation {
	local := start.In(loc)

	var b strings.Builder
	b.WriteString("Hola! Soy ")
	b.WriteString(fullName)
	b.WriteString(". Quiero reservar ")
	b.WriteString(serviceName)
	b.WriteString(" el ")
	b.WriteString(local.Format("2/1/2006"))
	b.WriteString(" a las ")
	b.WriteString(local.Format("15:04"))
	b.WriteString(".")
	if !notes.IsEmpty() {
		b.WriteString(" Notas: ")
		b.WriteString(notes.String())
	}
	text := b.String()

	return Confirmation{
		Text:         text,
		WhatsAppLink: whatsAppBaseURL + businessPhone + "?text=" + encodeText(text),
	}
}

// encodeText percent-encodes spaces as %20; WhatsApp renders a literal "+" otherwise.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
