package main

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func fundedBasisPoints(current, target int64) int64 {
	if target <= 0 {
		return 0
	}
	return current * 10_000 / target
}

// GetSummary returns headline funding figures for a project.
func (c *MarketplaceContract) GetSummary(ctx contractapi.TransactionContextInterface, projectID uint64) (*Summary, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Name:          p.Name,
		CurrentAmount: p.CurrentAmount,
		TargetAmount:  p.TargetAmount,
		PercentBP:     fundedBasisPoints(p.CurrentAmount, p.TargetAmount),
	}, nil
}

// GetDashboardStats derives the dashboard figures from the stored project and
// its donation counter. Nothing here is cached; every call recomputes.
func (c *MarketplaceContract) GetDashboardStats(ctx contractapi.TransactionContextInterface, projectID uint64) (*Stats, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	count, err := lastDonationSeq(ctx, projectID)
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, m := range p.Milestones {
		if m.Completed {
			completed++
		}
	}
	var lastUpdateTS int64
	if n := len(p.Updates); n > 0 {
		lastUpdateTS = p.Updates[n-1].Timestamp
	}
	return &Stats{
		CurrentAmount:       p.CurrentAmount,
		TargetAmount:        p.TargetAmount,
		PercentBP:           fundedBasisPoints(p.CurrentAmount, p.TargetAmount),
		DonationsCount:      count,
		MilestonesCompleted: completed,
		MilestonesTotal:     len(p.Milestones),
		LastUpdateTS:        lastUpdateTS,
	}, nil
}

// GetLocation returns the project's embedded location.
func (c *MarketplaceContract) GetLocation(ctx contractapi.TransactionContextInterface, projectID uint64) (*Location, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &p.Location, nil
}

func (c *MarketplaceContract) GetImpactArea(ctx contractapi.TransactionContextInterface, projectID uint64) (string, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return "", err
	}
	return p.ImpactArea, nil
}

func (c *MarketplaceContract) GetProblemStatement(ctx contractapi.TransactionContextInterface, projectID uint64) (string, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return "", err
	}
	return p.ProblemStatement, nil
}
