package viewmodel

// Notifier receives user-facing messages from view-model components
// (failed background loads, reverted moves). The console front end prints
// them; tests capture them.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}
