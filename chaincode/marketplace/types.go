package main

// Location is an embedded value on Project; it has no identity of its own.
// Coordinates are fixed-point integers scaled by the client.
type Location struct {
	Latitude  int64  `json:"latitude"`
	Longitude int64  `json:"longitude"`
	Country   string `json:"country"`
	Province  string `json:"province"`
	City      string `json:"city"`
}

type Milestone struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	AmountBudget int64  `json:"amountBudget"`
	Completed    bool   `json:"completed"`
}

type Update struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

type Project struct {
	ID               uint64      `json:"id"`
	Owner            string      `json:"owner"`
	Name             string      `json:"name"`
	DeadlineTS       int64       `json:"deadlineTs"`
	CurrentAmount    int64       `json:"currentAmount"`
	TargetAmount     int64       `json:"targetAmount"`
	ProblemStatement string      `json:"problemStatement"`
	ImpactArea       string      `json:"impactArea"`
	Location         Location    `json:"location"`
	Milestones       []Milestone `json:"milestones"`
	Updates          []Update    `json:"updates"`
}

type Donation struct {
	Seq       uint64 `json:"seq"`
	ProjectID uint64 `json:"projectId"`
	Donor     string `json:"donor"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// Summary and Stats are derived on read and never persisted.
type Summary struct {
	Name          string `json:"name"`
	CurrentAmount int64  `json:"currentAmount"`
	TargetAmount  int64  `json:"targetAmount"`
	PercentBP     int64  `json:"percentBp"`
}

type Stats struct {
	CurrentAmount       int64  `json:"currentAmount"`
	TargetAmount        int64  `json:"targetAmount"`
	PercentBP           int64  `json:"percentBp"`
	DonationsCount      uint64 `json:"donationsCount"`
	MilestonesCompleted int    `json:"milestonesCompleted"`
	MilestonesTotal     int    `json:"milestonesTotal"`
	LastUpdateTS        int64  `json:"lastUpdateTs"`
}
