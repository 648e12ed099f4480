package api

// Fixed user-facing messages per error kind. Unmapped failures fall back to
// the generic message.
const (
	genericErrorMessage    = "Something went wrong, please try again."
	noActiveSessionMessage = "No active session."
	sessionNotFoundMessage = "Workout session not found."
	sessionActiveMessage   = "A workout session is already in progress."
)
