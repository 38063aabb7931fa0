package services

import (
	"agentcrm/internal/models"
	"fmt"
	"sync"
	"time"
)

// SnapshotPersister loads and stores the full snapshot. Load reports
// ok=false when nothing usable is on disk.
type SnapshotPersister interface {
	Load() (snapshot *models.Snapshot, ok bool)
	Save(snapshot *models.Snapshot) error
}

type CrmServiceInterface interface {
	Initialize() error
	Reset() error
	ListContacts() []models.Contact
	ListDeals() []models.Deal
	AddContact(input models.ContactInput) (models.Contact, error)
	GetSummary() models.DashboardSummary
	GetPipeline() []models.PipelineStage
	ContactCount() int
	DealCount() int
}

type Clock func() time.Time

type CrmService struct {
	mu        sync.RWMutex
	persister SnapshotPersister
	now       Clock
	seed      *models.Snapshot
	snapshot  *models.Snapshot
}

func NewCrmService(persister SnapshotPersister, clock Clock) CrmServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &CrmService{
		persister: persister,
		now:       clock,
		seed:      SeedSnapshot(clock()),
		snapshot:  &models.Snapshot{},
	}
}

// Initialize loads the persisted snapshot, or installs and persists the
// seed data when nothing valid is stored.
func (cs *CrmService) Initialize() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if loaded, ok := cs.persister.Load(); ok {
		cs.snapshot = loaded.Clone()
		return nil
	}

	cs.snapshot = cs.seed.Clone()
	if err := cs.persister.Save(cs.snapshot.Clone()); err != nil {
		return fmt.Errorf("persist seed snapshot: %w", err)
	}
	return nil
}

func (cs *CrmService) Reset() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.snapshot = cs.seed.Clone()
	if err := cs.persister.Save(cs.snapshot.Clone()); err != nil {
		return fmt.Errorf("persist seed snapshot: %w", err)
	}
	return nil
}

func (cs *CrmService) ListContacts() []models.Contact {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return models.CloneContacts(cs.snapshot.Contacts)
}

func (cs *CrmService) ListDeals() []models.Deal {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return models.CloneDeals(cs.snapshot.Deals)
}

// AddContact prepends a new contact and persists before returning. When the
// write fails the contact stays in memory and the error is returned.
func (cs *CrmService) AddContact(input models.ContactInput) (models.Contact, error) {
	contact, err := models.NewContact(input, cs.now())
	if err != nil {
		return models.Contact{}, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	contacts := make([]models.Contact, 0, len(cs.snapshot.Contacts)+1)
	contacts = append(contacts, contact)
	contacts = append(contacts, cs.snapshot.Contacts...)
	cs.snapshot = &models.Snapshot{Contacts: contacts, Deals: cs.snapshot.Deals}

	if err := cs.persister.Save(cs.snapshot.Clone()); err != nil {
		return contact, fmt.Errorf("persist contact %s: %w", contact.ID, err)
	}
	return contact, nil
}

func (cs *CrmService) GetSummary() models.DashboardSummary {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return ComputeDashboardSummary(cs.snapshot, cs.now())
}

func (cs *CrmService) GetPipeline() []models.PipelineStage {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return ComputePipeline(cs.snapshot)
}

func (cs *CrmService) ContactCount() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.snapshot.Contacts)
}

func (cs *CrmService) DealCount() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.snapshot.Deals)
}

func NewSystemClock() Clock {
	return time.Now
}
