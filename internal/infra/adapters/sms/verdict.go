package sms

import (
	"strings"

	"github.com/tidwall/gjson"
)

// successCode is the gateway's "accepted" status code.
const successCode = 100

// ParseGatewayVerdict classifies a raw gateway response body. The gateway
// answers with a bare number, a JSON object or a plain-text status line
// depending on endpoint and account settings:
//   - JSON number: success iff it equals 100
//   - JSON object: success iff "success" is 100 (number or string) or
//     "messages" is a non-empty array
//   - anything that is not JSON: success iff the trimmed body starts with "100"
//
// Any other JSON value is a failure.
func ParseGatewayVerdict(raw string) bool {
	if !gjson.Valid(raw) {
		return strings.HasPrefix(strings.TrimSpace(raw), "100")
	}

	res := gjson.Parse(raw)
	switch {
	case res.Type == gjson.Number:
		return res.Num == successCode
	case res.IsObject():
		s := res.Get("success")
		if s.Type == gjson.Number && s.Num == successCode {
			return true
		}
		if s.Type == gjson.String && s.Str == "100" {
			return true
		}
		msgs := res.Get("messages")
		return msgs.IsArray() && len(msgs.Array()) > 0
	default:
		return false
	}
}
