package models

// BusinessContext drives how far apart in time a bank transaction and a
// financial document may sit and still be treated as the same economic
// event. It is derived from descriptions and counter-parties at matching
// time, never stored.
type BusinessContext string

const (
	ContextStandard             BusinessContext = "STANDARD"
	ContextProfessionalServices BusinessContext = "PROFESSIONAL_SERVICES"
	ContextGovernment           BusinessContext = "GOVERNMENT"
	ContextConstructionProject  BusinessContext = "CONSTRUCTION_PROJECT"
	ContextCorporateAction      BusinessContext = "CORPORATE_ACTION"
	ContextCombination          BusinessContext = "COMBINATION"
)

var contextToleranceDays = map[BusinessContext]int{
	ContextStandard:             60,
	ContextProfessionalServices: 180,
	ContextGovernment:           120,
	ContextConstructionProject:  365,
	ContextCorporateAction:      30,
	ContextCombination:          90,
}

// DateToleranceDays returns the maximum whole-day distance allowed for
// the context. Unknown contexts fall back to the STANDARD window.
func (bc BusinessContext) DateToleranceDays() int {
	if days, ok := contextToleranceDays[bc]; ok {
		return days
	}
	return contextToleranceDays[ContextStandard]
}
