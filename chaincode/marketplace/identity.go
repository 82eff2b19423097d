package main

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func getInvokerID(ctx contractapi.TransactionContextInterface) (string, error) {
	id, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("get invoker ID: %w", err)
	}
	return id, nil
}

// requireCaller aborts the transaction when the submitting client is not the
// given identity. Signature verification already happened at the peer; this
// only compares identities.
func requireCaller(ctx contractapi.TransactionContextInterface, identity string) error {
	inv, err := getInvokerID(ctx)
	if err != nil {
		return err
	}
	if inv != identity {
		return fmt.Errorf("%w: caller is not %s", ErrNotAuthorized, identity)
	}
	return nil
}
