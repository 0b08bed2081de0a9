package shared

// AggregateRoot is implemented by every aggregate whose changes raise events
type AggregateRoot interface {
	Entity
	GetVersion() int
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot tracks the version and the events not yet published.
// Version starts at 1 and grows by one per recorded change.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot creates a version 1 aggregate with no pending events
func NewBaseAggregateRoot(id, prefix string) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(id, prefix),
		Version:    1,
	}
}

func (a *BaseAggregateRoot) GetVersion() int { return a.Version }

// Record queues an event without counting a change, as for creation
func (a *BaseAggregateRoot) Record(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// RecordChange stamps a change: update time, version and the event describing it
func (a *BaseAggregateRoot) RecordChange(event DomainEvent) {
	a.Touch()
	a.Version++
	a.Record(event)
}

// GetDomainEvents returns the pending events in the order they were raised
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
