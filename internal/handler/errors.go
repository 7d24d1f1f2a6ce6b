package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgNotAuthenticated      = "Not signed in"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgResourceNotFound   = "Resource not found."
	ErrMsgUnavailable        = "Server is temporarily unavailable. Please try again."
)

// Success messages for API responses
const (
	MsgItemsGiven = "Items added to inventory"
)

// Operation names used in logs
const (
	opCompleteMission = "Complete mission"
	opListMissions    = "List missions"
	opGetDashboard    = "Get dashboard"
	opGetInventory    = "Get inventory"
	opRemoveItem      = "Remove item"
	opGiveItem        = "Give item"
	opListItems       = "List items"
	opGetActivity     = "Get activity"
)
