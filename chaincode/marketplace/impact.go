package main

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// SetImpactedPeople overwrites the project's impacted-people figure. The value
// is owner-reported, not derived from donations; last write wins.
func (c *MarketplaceContract) SetImpactedPeople(ctx contractapi.TransactionContextInterface, projectID uint64, owner string, impactedPeople int64) error {
	if err := requireCaller(ctx, owner); err != nil {
		return err
	}
	p, err := getProjectState(ctx, projectID)
	if err != nil {
		return err
	}
	if p.Owner != owner {
		return fmt.Errorf("%w: only the project owner can report impact", ErrNotAuthorized)
	}
	if impactedPeople < 0 {
		return fmt.Errorf("%w: impacted people must not be negative", ErrInvalidArgument)
	}
	key, err := impactKey(ctx, projectID)
	if err != nil {
		return err
	}
	if err := ctx.GetStub().PutState(key, []byte(strconv.FormatInt(impactedPeople, 10))); err != nil {
		return err
	}
	return emitEvent(ctx, eventImpactSet, impactSetEvent{
		ProjectID:      projectID,
		ImpactedPeople: impactedPeople,
	})
}

func readImpact(ctx contractapi.TransactionContextInterface, projectID uint64) (int64, error) {
	key, err := impactKey(ctx, projectID)
	if err != nil {
		return 0, err
	}
	b, err := ctx.GetStub().GetState(key)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, nil
	}
	return strconv.ParseInt(string(b), 10, 64)
}

// GetImpactedPeople returns the reported figure, 0 if never set.
func (c *MarketplaceContract) GetImpactedPeople(ctx contractapi.TransactionContextInterface, projectID uint64) (int64, error) {
	return readImpact(ctx, projectID)
}

// GetDonorImpactedPeople sums impacted people over the distinct projects the
// donor has backed at least once, independent of how many donations each got.
// Linear in the total number of projects ever created; a per-donor index would
// be needed before the catalog grows large.
func (c *MarketplaceContract) GetDonorImpactedPeople(ctx contractapi.TransactionContextInterface, donor string) (int64, error) {
	last, err := lastProjectID(ctx)
	if err != nil {
		return 0, err
	}
	var sum int64
	for pid := uint64(1); pid <= last; pid++ {
		mkey, err := backerKey(ctx, donor, pid)
		if err != nil {
			return 0, err
		}
		b, err := ctx.GetStub().GetState(mkey)
		if err != nil {
			return 0, err
		}
		if b == nil {
			continue
		}
		imp, err := readImpact(ctx, pid)
		if err != nil {
			return 0, err
		}
		sum += imp
	}
	return sum, nil
}
