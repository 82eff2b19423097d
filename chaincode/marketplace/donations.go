package main

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// Donate appends a donation to the project's ledger and bumps the running
// total. Seq numbers are contiguous from 1 per project; the whole write set
// (project total, donation record, backer marker, seq counter) commits as one
// transaction or not at all.
func (c *MarketplaceContract) Donate(ctx contractapi.TransactionContextInterface, projectID uint64, donor string, amount, timestamp int64) (uint64, error) {
	if err := requireCaller(ctx, donor); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: donation amount must be positive", ErrInvalidArgument)
	}
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return 0, err
	}
	last, err := lastDonationSeq(ctx, projectID)
	if err != nil {
		return 0, err
	}
	seq := last + 1
	p.CurrentAmount += amount

	d := &Donation{
		Seq:       seq,
		ProjectID: projectID,
		Donor:     donor,
		Amount:    amount,
		Timestamp: timestamp,
	}
	if err := putProjectState(ctx, p); err != nil {
		return 0, err
	}
	dkey, err := donationKey(ctx, projectID, seq)
	if err != nil {
		return 0, err
	}
	payload, _ := json.Marshal(d)
	if err := ctx.GetStub().PutState(dkey, payload); err != nil {
		return 0, err
	}
	mkey, err := backerKey(ctx, donor, projectID)
	if err != nil {
		return 0, err
	}
	if err := ctx.GetStub().PutState(mkey, []byte{0}); err != nil {
		return 0, err
	}
	if err := writeLastDonationSeq(ctx, projectID, seq); err != nil {
		return 0, err
	}
	if err := emitEvent(ctx, eventDonationRecorded, donationRecordedEvent{
		ProjectID:     projectID,
		Seq:           seq,
		Donor:         donor,
		Amount:        amount,
		Timestamp:     timestamp,
		CurrentAmount: p.CurrentAmount,
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// ListDonations pages the per-project donation log in seq order, same policy
// as ListProjects. Absent seq values are tolerated and skipped.
func (c *MarketplaceContract) ListDonations(ctx contractapi.TransactionContextInterface, projectID, startAfterSeq uint64, limit uint32) ([]*Donation, error) {
	last, err := lastDonationSeq(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := []*Donation{}
	if startAfterSeq >= last {
		return out, nil
	}
	var count uint32
	for seq := startAfterSeq + 1; seq <= last && count < limit; seq++ {
		key, err := donationKey(ctx, projectID, seq)
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
		var d Donation
		if err := json.Unmarshal(b, &d); err != nil {
			return nil, err
		}
		out = append(out, &d)
		count++
	}
	return out, nil
}
