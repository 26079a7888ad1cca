package event

import (
	"go.uber.org/zap"
)

var listeners = make([]*Listener, 0)

type Listener struct {
	eventType Type
	channel   chan interface{}
}

func AddEventListener(eventType Type, callback func(msg interface{})) {
	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: AddListener")

	listener := Listener{
		eventType: eventType,
		channel:   make(chan interface{}, 64),
	}

	listeners = append(listeners, &listener)

	go func() {
		for {
			msg := <-listener.channel
			callback(msg)
		}
	}()
}

// EmitEvent queues the message on every matching listener in emission order.
// Each listener drains its channel from a single goroutine, so a listener
// observes events in exactly the order operations completed.
func EmitEvent(eventType Type, msg interface{}) {
	if len(listeners) == 0 {
		zap.L().Debug("No event listeners available")
	}
	for _, listener := range listeners {
		if listener.eventType == eventType {
			zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emitting event")
			listener.channel <- msg
		}
	}
}
