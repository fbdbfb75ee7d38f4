// Package catalog holds the static career/credential/skill catalog: the
// immutable node set the graph builder assembles into the radial tree.
// Layout coordinates are left zeroed here; the builder assigns them.
package catalog

import "github.com/jonathan/skilltree/internal/types"

// Root is the single ring-0 node.
var root = types.GraphNode{
	ID:       "you",
	Kind:     types.KindRoot,
	Title:    "You",
	Subtitle: "Your starting point",
}

var hubs = []types.GraphNode{
	{ID: "hub-careers", Kind: types.KindHub, Title: "Careers", Subtitle: "Where you can go"},
	{ID: "hub-credentials", Kind: types.KindHub, Title: "Credentials", Subtitle: "Certs and licenses"},
	{ID: "hub-skills", Kind: types.KindHub, Title: "Skills", Subtitle: "What you can do"},
	{ID: "hub-education", Kind: types.KindHub, Title: "Education", Subtitle: "Schools and programs"},
	{ID: "hub-resources", Kind: types.KindHub, Title: "Resources", Subtitle: "Help along the way"},
}

var categories = []types.GraphNode{
	{ID: "it-security", Kind: types.KindCategory, Title: "IT & Security", Tags: []string{"tech"}},
	{ID: "skilled-trades", Kind: types.KindCategory, Title: "Skilled Trades", Tags: []string{"hands-on"}},
	{ID: "healthcare-support", Kind: types.KindCategory, Title: "Healthcare Support", Tags: []string{"care"}},
	{ID: "business-ops", Kind: types.KindCategory, Title: "Business & Operations", Tags: []string{"office"}},
}

var credentials = []types.GraphNode{
	{ID: "aplus", Kind: types.KindCredential, Title: "CompTIA A+", Subtitle: "Entry-level IT support cert", Tags: []string{"it-security"}},
	{ID: "securityplus", Kind: types.KindCredential, Title: "CompTIA Security+", Subtitle: "Baseline security cert", Tags: []string{"it-security"}},
	{ID: "epa-608", Kind: types.KindCredential, Title: "EPA Section 608", Subtitle: "Refrigerant handling license", Tags: []string{"skilled-trades"}},
	{ID: "osha-10", Kind: types.KindCredential, Title: "OSHA 10", Subtitle: "Construction safety card", Tags: []string{"skilled-trades"}},
	{ID: "cdl-a", Kind: types.KindCredential, Title: "Class A CDL", Subtitle: "Commercial driver's license", Tags: []string{"skilled-trades"}},
	{ID: "nurse-aide", Kind: types.KindCredential, Title: "Certified Nurse Aide", Subtitle: "State CNA certification", Tags: []string{"healthcare-support"}},
	{ID: "servsafe", Kind: types.KindCredential, Title: "ServSafe Manager", Subtitle: "Food safety certification", Tags: []string{"business-ops"}},
}

var skills = []types.GraphNode{
	{ID: "customer-service", Kind: types.KindSkill, Title: "Customer Service", Tags: []string{"business-ops", "soft-skill"}},
	{ID: "troubleshooting", Kind: types.KindSkill, Title: "Troubleshooting", Tags: []string{"it-security", "soft-skill"}},
	{ID: "hand-tools", Kind: types.KindSkill, Title: "Hand & Power Tools", Tags: []string{"skilled-trades"}},
	{ID: "data-entry", Kind: types.KindSkill, Title: "Data Entry", Tags: []string{"business-ops"}},
	{ID: "patient-care", Kind: types.KindSkill, Title: "Patient Care", Tags: []string{"healthcare-support"}},
}

var schools = []types.GraphNode{
	{
		ID: "community-college", Kind: types.KindSchool, Title: "Community College",
		Subtitle: "Associate degrees and transfer credit",
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
		},
	},
	{
		ID: "trade-school", Kind: types.KindSchool, Title: "Trade School",
		Subtitle: "Hands-on certificate programs",
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
		},
	},
	{
		ID: "state-university", Kind: types.KindSchool, Title: "State University",
		Subtitle: "Bachelor's degree programs",
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Min(types.FieldGPA, 2.5),
		},
	},
}

var resources = []types.GraphNode{
	{ID: "apprenticeship-finder", Kind: types.KindResource, Title: "Apprenticeship Finder", Links: []string{"https://www.apprenticeship.gov"}},
	{ID: "fafsa", Kind: types.KindResource, Title: "FAFSA", Subtitle: "Federal student aid", Links: []string{"https://studentaid.gov"}},
	{ID: "one-stop-center", Kind: types.KindResource, Title: "American Job Center", Links: []string{"https://www.careeronestop.org"}},
}

var careers = []types.GraphNode{
	{
		ID: "help-desk", Kind: types.KindCareer, Title: "Help Desk Technician",
		Subtitle: "First-line IT support", Tags: []string{"it-security"},
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Has("aplus"),
			types.Flag(types.FieldWantsRemote, true),
		},
	},
	{
		ID: "soc-analyst", Kind: types.KindCareer, Title: "SOC Analyst",
		Subtitle: "Security operations monitoring", Tags: []string{"it-security"},
		Requirements: []types.Requirement{
			types.Edu(types.EduAssociate),
			types.Has("securityplus"),
			types.Min(types.FieldGPA, 2.5),
		},
	},
	{
		ID: "network-admin", Kind: types.KindCareer, Title: "Network Administrator",
		Subtitle: "Enterprise network operations", Tags: []string{"it-security"},
		Requirements: []types.Requirement{
			types.Edu(types.EduBachelor),
			types.Has("securityplus"),
			types.Min(types.FieldGPA, 3.0),
			types.Flag(types.FieldCanRelocate, true),
		},
	},
	{
		ID: "hvac-tech", Kind: types.KindCareer, Title: "HVAC Technician",
		Subtitle: "Heating and cooling service", Tags: []string{"skilled-trades"},
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Has("epa-608"),
			types.Flag(types.FieldCanRelocate, true),
		},
	},
	{
		ID: "electrician-apprentice", Kind: types.KindCareer, Title: "Electrician Apprentice",
		Subtitle: "Paid on-the-job training", Tags: []string{"skilled-trades"},
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Has("osha-10"),
		},
	},
	{
		ID: "owner-operator", Kind: types.KindCareer, Title: "Owner-Operator Driver",
		Subtitle: "Independent trucking", Tags: []string{"skilled-trades"},
		Requirements: []types.Requirement{
			types.Has("cdl-a"),
			types.Min(types.FieldCreditScore, 650),
		},
	},
	{
		ID: "cna", Kind: types.KindCareer, Title: "Nursing Assistant",
		Subtitle: "Direct patient care", Tags: []string{"healthcare-support"},
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Has("nurse-aide"),
		},
	},
	{
		ID: "restaurant-manager", Kind: types.KindCareer, Title: "Restaurant Manager",
		Subtitle: "Front-of-house operations", Tags: []string{"business-ops"},
		Requirements: []types.Requirement{
			types.Edu(types.EduHS),
			types.Has("servsafe"),
			types.Min(types.FieldCreditScore, 600),
		},
	},
	{
		ID: "office-admin", Kind: types.KindCareer, Title: "Office Administrator",
		Subtitle: "Scheduling, records, and support", Tags: []string{"business-ops"},
		Requirements: []types.Requirement{
			types.Edu(types.EduSomeCollege),
			types.Flag(types.FieldWantsRemote, true),
		},
	},
}

// Root returns the catalog root node.
func Root() types.GraphNode { return root }

// Hubs returns the ring-1 hub nodes. Callers must not mutate the result.
func Hubs() []types.GraphNode { return hubs }

// Categories returns the career category nodes.
func Categories() []types.GraphNode { return categories }

// Credentials returns the credential nodes.
func Credentials() []types.GraphNode { return credentials }

// Skills returns the skill nodes.
func Skills() []types.GraphNode { return skills }

// Schools returns the school nodes.
func Schools() []types.GraphNode { return schools }

// Resources returns the resource nodes.
func Resources() []types.GraphNode { return resources }

// Careers returns the career nodes.
func Careers() []types.GraphNode { return careers }
