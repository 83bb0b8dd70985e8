package validators

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

func escape(v string) string {
	return escaper.Replace(v)
}

// normalizeEmail lowercases the address. Gmail addresses additionally lose
// dots and "+tag" suffixes in the local part, and googlemail.com becomes
// gmail.com.
func normalizeEmail(v string) string {
	at := strings.LastIndexByte(v, '@')
	if at < 0 {
		return v
	}

	local, domain := strings.ToLower(v[:at]), strings.ToLower(v[at+1:])

	if domain == "gmail.com" || domain == "googlemail.com" {
		if plus := strings.IndexByte(local, '+'); plus >= 0 {
			local = local[:plus]
		}
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	}

	return local + "@" + domain
}
