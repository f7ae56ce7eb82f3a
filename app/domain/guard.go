package domain

// GuardDecision is the route guard's verdict for a protected route
type GuardDecision string

const (
	// GuardLoading blocks rendering until the session finishes resolving
	GuardLoading GuardDecision = "loading"
	// GuardAllow renders the protected children
	GuardAllow GuardDecision = "render-children"
	// GuardRedirectLogin sends an unauthenticated client to the login page
	GuardRedirectLogin GuardDecision = "redirect-to-login"
	// GuardRedirectHome sends a client without the required tier home
	GuardRedirectHome GuardDecision = "redirect-to-home"
	// GuardUpgradePrompt renders the upgrade affordance for a missing feature
	GuardUpgradePrompt GuardDecision = "render-upgrade-prompt"
)

// GuardRequirement is the optional tier/feature requirement attached to
// a protected route. Zero values mean "authenticated is enough".
type GuardRequirement struct {
	Tier    TierName `json:"tier,omitempty"`
	Feature string   `json:"feature,omitempty"`
}

// Decide produces the guard verdict for a session against a
// requirement. Deciding while the session is still resolving would
// incorrectly deny authenticated users, so resolving sessions always
// yield GuardLoading.
func Decide(session *Session, req GuardRequirement, table *TierTable) GuardDecision {
	if session == nil || session.Resolving() {
		return GuardLoading
	}

	if !session.IsAuthenticated() || session.Profile == nil {
		return GuardRedirectLogin
	}

	if req.Tier != "" && !tierAtLeast(table, session.Profile.Tier, req.Tier) {
		return GuardRedirectHome
	}

	if req.Feature != "" && !table.Allows(session.Profile.Tier, req.Feature) {
		return GuardUpgradePrompt
	}

	return GuardAllow
}

// tierAtLeast orders tiers by their photosphere limit, which grows
// strictly with the plan. Unknown tiers rank as the most restrictive.
func tierAtLeast(table *TierTable, have, want TierName) bool {
	return table.Definition(have).MaxPhotospheres >= table.Definition(want).MaxPhotospheres
}
