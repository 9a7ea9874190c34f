package docModel

type Category string
type Severity string

const (
	CategoryExclusion          Category = "EXCLUSION"
	CategoryLimitation         Category = "LIMITATION"
	CategoryWaitingPeriod      Category = "WAITING_PERIOD"
	CategoryDeductible         Category = "DEDUCTIBLE"
	CategoryCopayment          Category = "COPAYMENT"
	CategoryCoinsurance        Category = "COINSURANCE"
	CategoryPolicyholderDuty   Category = "POLICYHOLDER_DUTY"
	CategoryRenewalRestriction Category = "RENEWAL_RESTRICTION"
	CategoryClaimProcess       Category = "CLAIM_PROCESS"
	CategoryNetworkRestriction Category = "NETWORK_RESTRICTION"
	CategoryUncategorized      Category = "UNCATEGORIZED"

	SeverityHigh    Severity = "HIGH"
	SeverityMedium  Severity = "MEDIUM"
	SeverityLow     Severity = "LOW"
	SeverityUnknown Severity = "UNKNOWN"
)

// KnownCategories in match priority order, first substring hit wins.
var KnownCategories = []Category{
	CategoryExclusion,
	CategoryLimitation,
	CategoryWaitingPeriod,
	CategoryDeductible,
	CategoryCopayment,
	CategoryCoinsurance,
	CategoryPolicyholderDuty,
	CategoryRenewalRestriction,
	CategoryClaimProcess,
	CategoryNetworkRestriction,
}

const DefaultSummary = "No concerns found"

// Finding is the typed result of analyzing one chunk. Only concerns
// (IsConcern true) ever reach the finding store.
type Finding struct {
	IsConcern      bool     `json:"is_concern"`
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	Summary        string   `json:"summary"`
	Recommendation string   `json:"recommendation"`
	Confidence     float64  `json:"confidence"`
}

// NewFinding returns the parser's starting point: no concern, defaults set.
func NewFinding() Finding {
	return Finding{
		IsConcern:      false,
		Category:       CategoryUncategorized,
		Severity:       SeverityUnknown,
		Summary:        DefaultSummary,
		Recommendation: "",
	}
}

// StoredFinding is a persisted concern plus the provenance of the chunk it
// came from, so clients can highlight the source region.
type StoredFinding struct {
	Id             string       `json:"id"`
	DocumentId     string       `json:"document_id"`
	PageNum        int          `json:"page_num"`
	Coordinates    [][4]float64 `json:"coordinates"`
	TextContent    string       `json:"text_content"`
	Category       Category     `json:"category"`
	Severity       Severity     `json:"severity"`
	Summary        string       `json:"summary"`
	Recommendation string       `json:"recommendation"`
	Confidence     float64      `json:"confidence_score"`
}

// SeverityRank orders findings for clients: worst first, unknown last.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}
