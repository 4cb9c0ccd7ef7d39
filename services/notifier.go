package services

import "log"

// Notifier delivers a short text to a user. Delivery is best-effort and must
// never block the state transition that triggered it: implementations log
// failures instead of returning them.
type Notifier interface {
	Notify(userID, text string)
}

// LogNotifier writes notifications to the process log. Used when no realtime
// gateway is attached, and as the delivery record in development.
type LogNotifier struct{}

func (LogNotifier) Notify(userID, text string) {
	log.Printf("📣 Notification for %s: %s", userID, text)
}

// MultiNotifier fans a notification out to several sinks.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(userID, text string) {
	for _, n := range m {
		n.Notify(userID, text)
	}
}
