package postgres

// Postgres error codes the repositories classify
const (
	pgCodeUniqueViolation      = "23505"
	pgCodeForeignKeyViolation  = "23503"
	pgCodeCheckViolation       = "23514"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeLockNotAvailable     = "55P03"
	pgCodeQueryCanceled        = "57014"
)

// Operation names used in wrapped errors
const (
	opBeginTx          = "begin transaction"
	opCommit           = "commit"
	opGetUser          = "get user"
	opGetItem          = "get item"
	opGetStacks        = "get stacks"
	opGetStack         = "get stack"
	opGetMission       = "get mission"
	opGetMissionState  = "get mission state"
	opListMissions     = "list missions"
	opListStates       = "list mission states"
	opInsertState      = "insert mission state"
	opUpdateState      = "update mission state"
	opUpdateUserStats  = "update user stats"
	opInsertActivity   = "insert activity"
	opWriteStacks      = "write stacks"
	opGetInventory     = "get inventory"
	opListItems        = "list items"
	opListUsers        = "list users"
	opUpsertUser       = "upsert user"
	opRecentActivities = "recent activities"
	opCleanupActivity  = "cleanup activities"
)

// Log messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
