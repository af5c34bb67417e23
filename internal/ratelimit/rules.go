package ratelimit

import "time"

// Action names used to key rate-limit rules.
const (
	ActionCreateInvitation = "createInvitation"
	ActionUpdateInvitation = "updateInvitation"
	ActionDeleteInvitation = "deleteInvitation"
	ActionAuthInvitation   = "authInvitation"
	ActionLookupInvitation = "lookupInvitation"
	ActionCreateGuestbook  = "createGuestbook"
	ActionCreateReview     = "createReview"
)

// DefaultRules bounds the sensitive actions. Creation is the tightest since
// each create allocates a slug and writes media; the auth actions are
// bounded to blunt secret brute-forcing.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		ActionCreateInvitation: {Max: 5, Window: time.Hour},
		ActionUpdateInvitation: {Max: 20, Window: time.Hour},
		ActionDeleteInvitation: {Max: 10, Window: time.Hour},
		ActionAuthInvitation:   {Max: 10, Window: 10 * time.Minute},
		ActionLookupInvitation: {Max: 10, Window: 10 * time.Minute},
		ActionCreateGuestbook:  {Max: 10, Window: 10 * time.Minute},
		ActionCreateReview:     {Max: 5, Window: time.Hour},
	}
}
