package main

import (
	"strconv"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func formatID(v uint64) string { return strconv.FormatUint(v, 10) }

func projectKey(ctx contractapi.TransactionContextInterface, id uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(projectKeyType, []string{formatID(id)})
}

func donationKey(ctx contractapi.TransactionContextInterface, projectID, seq uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(donationKeyType, []string{formatID(projectID), formatID(seq)})
}

func impactKey(ctx contractapi.TransactionContextInterface, projectID uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(impactKeyType, []string{formatID(projectID)})
}

// backerKey marks that donor has donated to the project at least once.
func backerKey(ctx contractapi.TransactionContextInterface, donor string, projectID uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(backerKeyType, []string{donor, formatID(projectID)})
}

// readCounter returns the last allocated value of a counter, 0 if unset.
func readCounter(ctx contractapi.TransactionContextInterface, attrs []string) (uint64, error) {
	key, err := ctx.GetStub().CreateCompositeKey(counterKeyType, attrs)
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
	return strconv.ParseUint(string(b), 10, 64)
}

func writeCounter(ctx contractapi.TransactionContextInterface, attrs []string, v uint64) error {
	key, err := ctx.GetStub().CreateCompositeKey(counterKeyType, attrs)
	if err != nil {
		return err
	}
	return ctx.GetStub().PutState(key, []byte(formatID(v)))
}

func lastProjectID(ctx contractapi.TransactionContextInterface) (uint64, error) {
	return readCounter(ctx, []string{projectCounterName})
}

func writeLastProjectID(ctx contractapi.TransactionContextInterface, v uint64) error {
	return writeCounter(ctx, []string{projectCounterName}, v)
}

func lastDonationSeq(ctx contractapi.TransactionContextInterface, projectID uint64) (uint64, error) {
	return readCounter(ctx, []string{donationCounterName, formatID(projectID)})
}

func writeLastDonationSeq(ctx contractapi.TransactionContextInterface, projectID, v uint64) error {
	return writeCounter(ctx, []string{donationCounterName, formatID(projectID)}, v)
}
