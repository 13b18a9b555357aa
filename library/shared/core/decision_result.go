package core

// DecisionResult is the outcome of a Decide function.
//
// Construct it only with IdempotentDecision, SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome          string      // "idempotent", "success", or "error"
	Event            DomainEvent // nil for idempotent decisions
	AdditionalEvents DomainEvents
	Err              error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision means that the requested state is already reached, nothing gets appended.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision carries the event(s) to append. All of them are appended atomically.
func SuccessDecision(event DomainEvent, additionalEvents ...DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome:          successOutcome,
		Event:            event,
		AdditionalEvents: additionalEvents,
	}
}

// ErrorDecision carries a business rule violation and the failure event that records it.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Event:   event,
		Err:     err,
	}
}

// HasEventToAppend returns true if there is an event to append to the event store.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != idempotentOutcome
}

// IsIdempotent returns true if the decision did not produce any event.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// AllEvents returns Event followed by AdditionalEvents, or nothing for idempotent decisions.
func (r DecisionResult) AllEvents() DomainEvents {
	if !r.HasEventToAppend() {
		return nil
	}

	return append(DomainEvents{r.Event}, r.AdditionalEvents...)
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
