package reconcile

// excludedDomains lists public and personal email providers. A domain on this
// list must never be used to infer partner affiliation, no matter what other
// signals exist.
var excludedDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"yahoo.com":      {},
	"yahoo.co.uk":    {},
	"yahoo.fr":       {},
	"yahoo.de":       {},
	"yahoo.co.jp":    {},
	"hotmail.com":    {},
	"hotmail.co.uk":  {},
	"hotmail.fr":     {},
	"outlook.com":    {},
	"outlook.fr":     {},
	"live.com":       {},
	"live.co.uk":     {},
	"msn.com":        {},
	"aol.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"mac.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"gmx.com":        {},
	"gmx.de":         {},
	"gmx.net":        {},
	"web.de":         {},
	"mail.com":       {},
	"mail.ru":        {},
	"yandex.com":     {},
	"yandex.ru":      {},
	"zoho.com":       {},
	"qq.com":         {},
	"163.com":        {},
	"126.com":        {},
	"naver.com":      {},
	"comcast.net":    {},
	"verizon.net":    {},
	"att.net":        {},
}

// ExcludedDomain reports whether a domain must not be associated with a
// partner. An empty domain (contact without a usable email) is excluded.
func ExcludedDomain(domain string) bool {
	if domain == "" {
		return true
	}
	_, ok := excludedDomains[domain]
	return ok
}
