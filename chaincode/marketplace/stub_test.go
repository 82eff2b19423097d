package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeStub is an in-memory ChaincodeStubInterface covering the methods the
// contract touches. Anything else panics through the embedded nil interface.
type fakeStub struct {
	shim.ChaincodeStubInterface
	state  map[string][]byte
	events []recordedEvent
	txTime time.Time
}

type recordedEvent struct {
	name    string
	payload []byte
}

func newFakeStub() *fakeStub {
	return &fakeStub{
		state:  map[string][]byte{},
		txTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
	return s.state[key], nil
}

func (s *fakeStub) PutState(key string, value []byte) error {
	s.state[key] = value
	return nil
}

func (s *fakeStub) CreateCompositeKey(objectType string, attrs []string) (string, error) {
	return shim.CreateCompositeKey(objectType, attrs)
}

func (s *fakeStub) SetEvent(name string, payload []byte) error {
	s.events = append(s.events, recordedEvent{name: name, payload: payload})
	return nil
}

func (s *fakeStub) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	return timestamppb.New(s.txTime), nil
}

func (s *fakeStub) lastEvent(t *testing.T) recordedEvent {
	t.Helper()
	if len(s.events) == 0 {
		t.Fatalf("expected at least one event")
	}
	return s.events[len(s.events)-1]
}

func decodeEvent(t *testing.T, ev recordedEvent, into any) {
	t.Helper()
	if err := json.Unmarshal(ev.payload, into); err != nil {
		t.Fatalf("decode %s event: %v", ev.name, err)
	}
}

type fakeIdentity struct {
	cid.ClientIdentity
	id string
}

func (f *fakeIdentity) GetID() (string, error) { return f.id, nil }

// asCaller builds a transaction context submitting as the given identity.
func asCaller(stub *fakeStub, caller string) *contractapi.TransactionContext {
	ctx := &contractapi.TransactionContext{}
	ctx.SetStub(stub)
	ctx.SetClientIdentity(&fakeIdentity{id: caller})
	return ctx
}

func testLocation() Location {
	return Location{
		Latitude:  -34_9214,
		Longitude: -57_9544,
		Country:   "AR",
		Province:  "Buenos Aires",
		City:      "La Plata",
	}
}

func testMilestones() []Milestone {
	return []Milestone{
		{Title: "Alquiler del local", Description: "Primer mes de alquiler", AmountBudget: 10000},
		{Title: "Equipamiento", Description: "Cocina y mobiliario", AmountBudget: 15000},
		{Title: "Apertura", Description: "Primer servicio de comidas", AmountBudget: 5000},
	}
}

// mustCreateProject creates a project owned by owner and returns its id.
func mustCreateProject(t *testing.T, c *MarketplaceContract, stub *fakeStub, owner string) uint64 {
	t.Helper()
	id, err := c.CreateProject(asCaller(stub, owner), owner, "Comedor",
		1_726_000_000, 30_000, "Crear comedor comunitario", "Educacion",
		testLocation(), testMilestones())
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return id
}
