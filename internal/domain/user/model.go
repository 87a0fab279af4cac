package user

import "strings"

// Principal is the authenticated caller identity supplied by the account
// service.
type Principal struct {
	UserID string
	Email  string
}

// AccessList is injected configuration deciding admin and premium rights by
// email. Lists come from config, never from ambient globals.
type AccessList struct {
	admins  map[string]struct{}
	premium map[string]struct{}
}

func NewAccessList(adminEmails, premiumEmails []string) AccessList {
	return AccessList{
		admins:  normalizeEmailSet(adminEmails),
		premium: normalizeEmailSet(premiumEmails),
	}
}

func (a AccessList) IsAdmin(email string) bool {
	_, ok := a.admins[normalizeEmail(email)]
	return ok
}

func (a AccessList) IsPremium(email string) bool {
	if a.IsAdmin(email) {
		return true
	}
	_, ok := a.premium[normalizeEmail(email)]
	return ok
}

func normalizeEmailSet(emails []string) map[string]struct{} {
	out := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		normalized := normalizeEmail(email)
		if normalized == "" {
			continue
		}
		out[normalized] = struct{}{}
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
