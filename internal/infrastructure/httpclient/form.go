package httpclient

import (
	"net/url"
	"strings"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// Form builds ordered form fields from alternating key/value arguments. A
// trailing key without a value gets "".
func Form(kv ...string) []domain.FormField {
	fields := make([]domain.FormField, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		f := domain.FormField{Key: kv[i]}
		if i+1 < len(kv) {
			f.Value = kv[i+1]
		}
		fields = append(fields, f)
	}
	return fields
}

// EncodeForm renders fields as key=value pairs joined by "&", keeping their
// order. Spaces encode as %20 and the marks !*'() stay literal.
func EncodeForm(fields []domain.FormField) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(f.Key))
		b.WriteByte('=')
		b.WriteString(escape(f.Value))
	}
	return b.String()
}

// componentMarks are the characters encodeURIComponent leaves literal but
// url.QueryEscape does not.
var componentMarks = strings.NewReplacer("%21", "!", "%2A", "*", "%27", "'", "%28", "(", "%29", ")")

// escape encodes s the way a browser encodes one URI component: letters,
// digits and -_.!~*'() stay literal, a space becomes %20.
func escape(s string) string {
	return componentMarks.Replace(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"))
}
