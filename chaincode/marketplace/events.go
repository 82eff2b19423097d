package main

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// Event names. Each transaction emits at most one event.
const (
	eventProjectCreated     = "ProjectCreated"
	eventDonationRecorded   = "DonationRecorded"
	eventUpdateAdded        = "UpdateAdded"
	eventMilestoneCompleted = "MilestoneCompleted"
	eventImpactSet          = "ImpactSet"
)

type projectCreatedEvent struct {
	ID           uint64 `json:"id"`
	Owner        string `json:"owner"`
	Name         string `json:"name"`
	DeadlineTS   int64  `json:"deadlineTs"`
	TargetAmount int64  `json:"targetAmount"`
	ImpactArea   string `json:"impactArea"`
}

type donationRecordedEvent struct {
	ProjectID     uint64 `json:"projectId"`
	Seq           uint64 `json:"seq"`
	Donor         string `json:"donor"`
	Amount        int64  `json:"amount"`
	Timestamp     int64  `json:"timestamp"`
	CurrentAmount int64  `json:"currentAmount"`
}

type updateAddedEvent struct {
	ProjectID uint64 `json:"projectId"`
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	Title     string `json:"title"`
}

type milestoneCompletedEvent struct {
	ProjectID uint64 `json:"projectId"`
	Index     uint32 `json:"index"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

type impactSetEvent struct {
	ProjectID      uint64 `json:"projectId"`
	ImpactedPeople int64  `json:"impactedPeople"`
}

func emitEvent(ctx contractapi.TransactionContextInterface, name string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", name, err)
	}
	return ctx.GetStub().SetEvent(name, b)
}
