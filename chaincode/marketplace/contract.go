package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// MarketplaceContract manages crowdfunding projects, their donation ledger and
// impact metrics. Donation amounts are metadata; value settlement happens
// outside the ledger.
type MarketplaceContract struct{ contractapi.Contract }

// ---- internal helpers ----

func getProjectState(ctx contractapi.TransactionContextInterface, id uint64) (*Project, error) {
	key, err := projectKey(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := ctx.GetStub().GetState(key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: project %d", ErrProjectNotFound, id)
	}
	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func putProjectState(ctx contractapi.TransactionContextInterface, p *Project) error {
	key, err := projectKey(ctx, p.ID)
	if err != nil {
		return err
	}
	payload, _ := json.Marshal(p)
	return ctx.GetStub().PutState(key, payload)
}

// ---- transactions ----

// CreateProject allocates the next project id and stores the project with a
// zero running total. The milestone list is fixed from here on; only the
// completed flag of each entry may change.
func (c *MarketplaceContract) CreateProject(
	ctx contractapi.TransactionContextInterface,
	owner, name string,
	deadlineTS, targetAmount int64,
	problemStatement, impactArea string,
	location Location,
	milestones []Milestone,
) (uint64, error) {
	if err := requireCaller(ctx, owner); err != nil {
		return 0, err
	}
	if targetAmount <= 0 {
		return 0, fmt.Errorf("%w: target amount must be positive", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if err := checkLen("name", name, maxNameLen); err != nil {
		return 0, err
	}
	if err := checkLen("problemStatement", problemStatement, maxProblemStatementLen); err != nil {
		return 0, err
	}
	if err := checkLen("impactArea", impactArea, maxImpactAreaLen); err != nil {
		return 0, err
	}
	if milestones == nil {
		milestones = []Milestone{}
	}
	for i := range milestones {
		if err := checkLen("milestone title", milestones[i].Title, maxMilestoneTitleLen); err != nil {
			return 0, err
		}
		if err := checkLen("milestone description", milestones[i].Description, maxMilestoneDescLen); err != nil {
			return 0, err
		}
		milestones[i].Completed = false
	}

	last, err := lastProjectID(ctx)
	if err != nil {
		return 0, err
	}
	id := last + 1

	p := &Project{
		ID:               id,
		Owner:            owner,
		Name:             name,
		DeadlineTS:       deadlineTS,
		CurrentAmount:    0,
		TargetAmount:     targetAmount,
		ProblemStatement: problemStatement,
		ImpactArea:       impactArea,
		Location:         location,
		Milestones:       milestones,
		Updates:          []Update{},
	}
	if err := putProjectState(ctx, p); err != nil {
		return 0, err
	}
	if err := writeLastProjectID(ctx, id); err != nil {
		return 0, err
	}
	if err := emitEvent(ctx, eventProjectCreated, projectCreatedEvent{
		ID:           id,
		Owner:        owner,
		Name:         name,
		DeadlineTS:   deadlineTS,
		TargetAmount: targetAmount,
		ImpactArea:   impactArea,
	}); err != nil {
		return 0, err
	}
	return id, nil
}

// GetProject returns a project by id.
func (c *MarketplaceContract) GetProject(ctx contractapi.TransactionContextInterface, id uint64) (*Project, error) {
	return getProjectState(ctx, id)
}

// ProjectExists checks if a project key exists.
func (c *MarketplaceContract) ProjectExists(ctx contractapi.TransactionContextInterface, id uint64) (bool, error) {
	key, err := projectKey(ctx, id)
	if err != nil {
		return false, err
	}
	b, err := ctx.GetStub().GetState(key)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// ListProjects pages through ids startAfter+1 .. last allocated, in ascending
// order, skipping ids with no stored record. The result is tied to the counter
// value at call time; there is no snapshot across calls.
func (c *MarketplaceContract) ListProjects(ctx contractapi.TransactionContextInterface, startAfter uint64, limit uint32) ([]*Project, error) {
	last, err := lastProjectID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Project{}
	if startAfter >= last {
		return out, nil
	}
	var count uint32
	for id := startAfter + 1; id <= last && count < limit; id++ {
		key, err := projectKey(ctx, id)
		if err != nil {
			return nil, err
		}
		b, err := ctx.GetStub().GetState(key)
		if err != nil {
			return nil, err
		}
		if b == nil {
			continue
		}
		var p Project
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
		count++
	}
	return out, nil
}
