package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// Defaults for tunable behavior. The access grace window forward-dates
// the delegation hasAccess check so a grant expiring between the check
// and the mined block does not cause a spurious rejection; it is a
// race-avoidance heuristic, not a correctness guarantee.
const (
	DefaultAccessGraceSeconds    = 60
	DefaultReceiptTimeoutSeconds = 120
	DefaultReceiptPollSeconds    = 2
	DefaultPermissionFanout      = 8
)

// SubgraphBatchSize is the page size for subgraph listing queries.
const SubgraphBatchSize = 10
