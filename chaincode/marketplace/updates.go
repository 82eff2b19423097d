package main

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// AddUpdate appends a progress note to the project's update log. Only the
// project owner may post; the index equals the length before the append and
// entries are never reordered or removed.
func (c *MarketplaceContract) AddUpdate(ctx contractapi.TransactionContextInterface, projectID uint64, owner, title, body string, timestamp int64) error {
	if err := requireCaller(ctx, owner); err != nil {
		return err
	}
	if err := checkLen("title", title, maxUpdateTitleLen); err != nil {
		return err
	}
	if err := checkLen("body", body, maxUpdateBodyLen); err != nil {
		return err
	}
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return err
	}
	if p.Owner != owner {
		return fmt.Errorf("%w: only the project owner can post updates", ErrNotAuthorized)
	}
	idx := len(p.Updates)
	p.Updates = append(p.Updates, Update{Title: title, Body: body, Timestamp: timestamp})
	if err := putProjectState(ctx, p); err != nil {
		return err
	}
	return emitEvent(ctx, eventUpdateAdded, updateAddedEvent{
		ProjectID: projectID,
		Index:     idx,
		Timestamp: timestamp,
		Title:     title,
	})
}

// CompleteMilestone marks the milestone at index as completed. The flag never
// transitions back. Repeat calls leave the state as-is but still re-emit the
// event, stamped with the transaction timestamp.
func (c *MarketplaceContract) CompleteMilestone(ctx contractapi.TransactionContextInterface, projectID uint64, owner string, index uint32) error {
	if err := requireCaller(ctx, owner); err != nil {
		return err
	}
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return err
	}
	if p.Owner != owner {
		return fmt.Errorf("%w: only the project owner can complete milestones", ErrNotAuthorized)
	}
	if int(index) >= len(p.Milestones) {
		return fmt.Errorf("%w: milestone index %d out of range", ErrInvalidArgument, index)
	}
	p.Milestones[index].Completed = true
	if err := putProjectState(ctx, p); err != nil {
		return err
	}
	ts, err := ctx.GetStub().GetTxTimestamp()
	if err != nil {
		return fmt.Errorf("get tx timestamp: %w", err)
	}
	return emitEvent(ctx, eventMilestoneCompleted, milestoneCompletedEvent{
		ProjectID: projectID,
		Index:     index,
		Title:     p.Milestones[index].Title,
		Timestamp: ts.GetSeconds(),
	})
}

// ListUpdates returns the full update log in append order.
func (c *MarketplaceContract) ListUpdates(ctx contractapi.TransactionContextInterface, projectID uint64) ([]Update, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p.Updates, nil
}

// ListMilestones returns the milestone list in creation order.
func (c *MarketplaceContract) ListMilestones(ctx contractapi.TransactionContextInterface, projectID uint64) ([]Milestone, error) {
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p.Milestones, nil
}
