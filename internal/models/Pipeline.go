package models

// Stage is the closed set of pipeline buckets. Deal stage labels are mapped
// onto it with a switch, never by indexing a map with the raw label.
type Stage int

const (
	StageUnmatched Stage = iota
	StageDiscovery
	StageProposal
	StageNegotiation
	StageClosed
)

// PipelineStages lists the buckets in display order.
var PipelineStages = []Stage{StageDiscovery, StageProposal, StageNegotiation, StageClosed}

// ParseStage matches label case-sensitively against the bucket labels.
func ParseStage(label string) Stage {
	switch label {
	case "Discovery":
		return StageDiscovery
	case "Proposal":
		return StageProposal
	case "Negotiation":
		return StageNegotiation
	case "Closed":
		return StageClosed
	default:
		return StageUnmatched
	}
}

func (s Stage) ID() string {
	switch s {
	case StageDiscovery:
		return "discovery"
	case StageProposal:
		return "proposal"
	case StageNegotiation:
		return "negotiation"
	case StageClosed:
		return "closed"
	default:
		return ""
	}
}

func (s Stage) Label() string {
	switch s {
	case StageDiscovery:
		return "Discovery"
	case StageProposal:
		return "Proposal"
	case StageNegotiation:
		return "Negotiation"
	case StageClosed:
		return "Closed"
	default:
		return ""
	}
}

type PipelineStage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Deals []Deal `json:"deals"`
}
