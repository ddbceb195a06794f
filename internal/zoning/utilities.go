package zoning

// UtilityService describes which utilities reach a zip code and the
// estimated cost of connecting a second lot to them.
type UtilityService struct {
	Sewer          bool    `json:"sewer" yaml:"sewer"`
	Water          bool    `json:"water" yaml:"water"`
	Gas            bool    `json:"gas" yaml:"gas"`
	ConnectionCost float64 `json:"connection_cost" yaml:"connection_cost"` // dollars for a new tap set
}

var utilities = map[string]UtilityService{
	"78701": {Sewer: true, Water: true, Gas: true, ConnectionCost: 18000},
	"78703": {Sewer: true, Water: true, Gas: true, ConnectionCost: 20000},
	"78704": {Sewer: true, Water: true, Gas: true, ConnectionCost: 20000},
	"78702": {Sewer: true, Water: true, Gas: true, ConnectionCost: 22000},
	"78731": {Sewer: true, Water: true, Gas: true, ConnectionCost: 24000},
	"78759": {Sewer: true, Water: true, Gas: true, ConnectionCost: 26000},
	"78723": {Sewer: true, Water: true, Gas: true, ConnectionCost: 24000},
	"78745": {Sewer: true, Water: true, Gas: true, ConnectionCost: 28000},
	// Far-south corridor: gas mains are spotty past Slaughter Lane.
	"78748": {Sewer: true, Water: true, Gas: false, ConnectionCost: 32000},
	// West of the Edwards Aquifer recharge zone: septic territory.
	"78736": {Sewer: false, Water: true, Gas: false, ConnectionCost: 40000},
	DefaultMarketKey: {Sewer: true, Water: true, Gas: true, ConnectionCost: 25000},
}

// Utilities returns the utility availability for a zip code, falling back to
// the default row for unknown or empty zips.
func Utilities(zip string) UtilityService {
	if u, ok := utilities[zip]; ok {
		return u
	}
	return utilities[DefaultMarketKey]
}
