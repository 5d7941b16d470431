package config

// defaultCandidatePattern matches upper-cased alphanumeric runs of 3 to 25
// characters bounded by word boundaries. Hyphens are included so a hyphenated
// referral token surfaces as a single match and can be rejected whole instead
// of being split into code-shaped fragments.
const defaultCandidatePattern = `\b[A-Z0-9-]{3,25}\b`

// defaultReferralPattern matches referral codes of the form ABC-12-DEF.
// Referral codes are a distinct, non-redeemable artifact and are never
// candidates.
const defaultReferralPattern = `^[A-Z]{3}-[0-9]{2,3}-[A-Z]{3}$`

// defaultIgnoredWords are tokens that are structurally code-shaped but are
// known noise in post titles.
var defaultIgnoredWords = []string{
	"CODE", "CODES", "NEW", "THE", "AND", "FOR", "FREE", "GET",
	"JUST", "ANOTHER", "ONE", "MORE", "SOME", "HERE", "BELOW",
	"INSIDE", "LOOK", "CHECK", "BODY", "POST", "TITLE", "ALL",
	"ANY", "GOT", "HAVE", "KNOW", "FOUND", "LATEST", "FRESH",
	"RECENT", "CURRENT", "TODAY", "TODAYS",
	"TACTICUS", "WARHAMMER", "BLACKSTONE", "COIN", "COINS",
	"USE", "REDEEM", "WEB", "STORE", "APP", "IOS", "ANDROID",
}

// defaultBodyHintPatterns capture title phrasings where the poster announces
// a code exists without stating it in the title. Evaluated in order with
// short-circuit on first match.
var defaultBodyHintPatterns = []string{
	`(?i)^\s*(another|just a|one more|a new|some|more)\s+code\s*(!|\.|here|below|inside|for you)?\s*$`,
	`(?i)^\s*new\s+code\s*-\s*\d+.*blackstone.*`,
	`(?i)^\s*(the|latest|current|today'?s?)\s+code\s+is\s+(in|below|here|in the body|in post).*`,
	`(?i)^\s*check\s+(the\s+)?(body|post|description|comments)\s+(for|for the)\s+code\s*$`,
	`(?i)^\s*code\s+(in|inside)\s+(the\s+)?(post|body|description|comments)\s*(!|\.)?\s*$`,
	`(?i)^\s*(new|latest|fresh|recent)\s+codes?\s*(!|\.)?\s*$`,
	`(?i)^\s*found\s+a\s+(new\s+)?code\s*(!|\.)?\s*$`,
	`(?i)^\s*anyone\s+(got|have|know)\s+(a|any)\s+(new\s+)?code`,
	`(?i)^\s*title\s*(says|has)\s*it\s*all\s*$`,
	`(?i)^\s*look\s*inside\s*$`,
}
