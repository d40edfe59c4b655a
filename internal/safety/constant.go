package safety

// MaxInputLength is the sanitized input cap in code points.
const MaxInputLength = 5000

// ContextWindow is how many characters around a jailbreak match are scanned
// for testing-domain keywords before the match is suppressed as a false
// positive.
const ContextWindow = 50

// RejectionReason is the user-facing message for rejected input.
const RejectionReason = "Your request contains potentially harmful content. Please rephrase your request to focus on test data generation."

// jailbreakPhrases are known instruction-override attempts, matched as
// substrings of the lowercased input.
var jailbreakPhrases = []string{
	"ignore previous instructions",
	"forget all previous",
	"you are now",
	"pretend to be",
	"act as if",
	"system prompt",
	"override",
	"bypass",
	"jailbreak",
	"ignore safety",
	"disable safety",
}

// testingDomainKeywords are positive indicators that the conversation is
// about test-data generation.
var testingDomainKeywords = []string{
	"test", "testing", "data", "synthetic", "generate", "mock", "fixture",
	"sample", "dataset", "scenario", "case", "validation", "verify",
	"assert", "expect", "input", "output", "format", "schema", "structure",
}

// smallTalkOpeners are greeting/pleasantry prefixes that pass the domain
// check without a keyword.
var smallTalkOpeners = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	"thanks", "thank you", "please", "how are you", "what's up",
	"bye", "goodbye", "see you", "help", "can you",
}
