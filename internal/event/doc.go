// Package event provides a synchronous pub-sub bus the plan controller
// publishes state changes on.
//
// The controller owns all state and mutates it inside the UI loop; the bus
// lets other parts (the non-interactive generate command, the debug log)
// observe those changes without the controller knowing about them.
//
// # Event Types
//
//   - [PlanReplacedEvent] ("plan.replaced"): a new current plan was applied
//   - [MessagePostedEvent] ("message.posted"): a chat log entry was appended
//   - [MessageRemovedEvent] ("message.removed"): a transient entry was removed
//   - [LoadingChangedEvent] ("loading.changed"): the upload indicator toggled
//   - [SelectionChangedEvent] ("selection.changed"): the file selection was replaced
//   - [DocumentSavedEvent] ("document.saved"): the plan PDF was written to disk
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	bus.Subscribe(event.TypeMessagePosted, func(e event.Event) {
//	    posted := e.(event.MessagePostedEvent)
//	    fmt.Println(posted.Text)
//	})
//
//	// Subscribe to all events (useful for logging)
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "type", e.EventType())
//	})
//
// Handlers run synchronously on the publishing goroutine. A panicking
// handler is logged and does not stop delivery to the others.
package event
