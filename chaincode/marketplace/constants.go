package main

// Composite key namespaces. Every stored record kind gets its own object type
// so keys cannot collide across kinds.
const (
	counterKeyType  = "counter"
	projectKeyType  = "project"
	donationKeyType = "donation"
	impactKeyType   = "impact"
	backerKeyType   = "backer~project" // (donor, project) marker
)

// Counter names under counterKeyType.
const (
	projectCounterName  = "project"
	donationCounterName = "donation"
)

// Free-text caps in bytes. They bound storage cost, nothing more.
const (
	maxNameLen             = 100
	maxProblemStatementLen = 500
	maxImpactAreaLen       = 50
	maxMilestoneTitleLen   = 100
	maxMilestoneDescLen    = 500
	maxUpdateTitleLen      = 100
	maxUpdateBodyLen       = 1000
)
