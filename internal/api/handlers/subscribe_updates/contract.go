package subscribe_updates

import "github.com/gooffice/GoOffice-ShiftService/internal/notifier"

type Hub interface {
	Subscribe() *notifier.Subscriber
	Unsubscribe(sub *notifier.Subscriber)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
