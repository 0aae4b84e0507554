package interval

// Greeting is the message sent by Greet.
const Greeting = "Hello, just-interval-finder!"

// Notifier delivers a message to the host environment, e.g. a browser alert.
type Notifier func(message string)

// Greet sends Greeting through notify. It only confirms that the binding is
// loaded and plays no part in peak finding. A nil notify is a no-op.
func Greet(notify Notifier) {
	if notify != nil {
		notify(Greeting)
	}
}
