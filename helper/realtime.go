package helper

import (
	"context"
	"encoding/json"
	"log"
	"restaurant_manager/model"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const EventChannel = "restaurant:orders"

type Event struct {
	Type         string             `json:"type"`
	Order        *model.Order       `json:"order,omitempty"`
	SeatingUnit  *model.SeatingUnit `json:"seatingUnit,omitempty"`
	PendingCount int64              `json:"pendingCount"`
	At           time.Time          `json:"at"`
}

// Subscriber is a connected staff screen.
type Subscriber interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	redisClient *redis.Client

	subscribers = make(map[Subscriber]bool)
	mu          sync.Mutex
)

// InitRedis enables the Redis fan-out so events reach screens connected to
// other instances. With an empty address events stay in-process.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, realtime events stay in-process")
		return
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, realtime events stay in-process: %v", addr, err)
		client.Close()
		return
	}
	redisClient = client
}

// StartEventRelay forwards events published on Redis to local subscribers
// until ctx is cancelled.
func StartEventRelay(ctx context.Context) {
	if redisClient == nil {
		return
	}
	pubsub := redisClient.Subscribe(ctx, EventChannel)
	go func() {
		defer pubsub.Close()
		channel := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-channel:
				if !ok {
					return
				}
				deliver([]byte(msg.Payload))
			}
		}
	}()
}

func Subscribe(s Subscriber) {
	mu.Lock()
	subscribers[s] = true
	mu.Unlock()
}

func Unsubscribe(s Subscriber) {
	mu.Lock()
	delete(subscribers, s)
	mu.Unlock()
}

func SubscriberCount() int {
	mu.Lock()
	defer mu.Unlock()
	return len(subscribers)
}

func deliver(payload []byte) {
	mu.Lock()
	defer mu.Unlock()
	for s := range subscribers {
		if err := s.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.Close()
			delete(subscribers, s)
		}
	}
}

// Publish sends evt to every connected screen, through Redis when enabled.
func Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Marshal event %s failed: %v", evt.Type, err)
		return
	}
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Publish(ctx, EventChannel, payload).Err(); err == nil {
			return
		} else {
			log.Printf("Redis publish failed, delivering locally: %v", err)
		}
	}
	deliver(payload)
}

// PublishOrder publishes an order event carrying the current pending count.
func PublishOrder(db *gorm.DB, eventType string, order *model.Order) {
	Publish(Event{Type: eventType, Order: order, PendingCount: PendingCount(db)})
}

func PublishSeating(db *gorm.DB, eventType string, unit *model.SeatingUnit) {
	Publish(Event{Type: eventType, SeatingUnit: unit, PendingCount: PendingCount(db)})
}
