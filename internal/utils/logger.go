package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per notable service event, keyed by module
// and action. Messages are short summaries; never log credentials,
// tokens, or full request payloads.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("%s %s request_id=%s %s", strings.ToUpper(module), action, req, message)
}
