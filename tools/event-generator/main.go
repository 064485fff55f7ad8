package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type SuborderEvent struct {
	SuborderID int64     `json:"suborder_id"`
	RiderID    int64     `json:"rider_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

var statuses = []string{
	"pending", "in_progress", "ready", "assigned", "picked_up",
	"handover_confirmed", "in_transit", "delivered", "cancelled",
}

func generateRandomEvent(riders []int64) SuborderEvent {
	ev := SuborderEvent{
		SuborderID: rand.Int63n(1000) + 1,
		Status:     statuses[rand.Intn(len(statuses))],
		OccurredAt: time.Now(),
	}
	// suborders before assignment have no rider
	if ev.Status != "pending" && ev.Status != "in_progress" && ev.Status != "ready" {
		ev.RiderID = riders[rand.Intn(len(riders))]
	}
	return ev
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "suborder-events", "topic to publish to")
	interval := flag.Duration("interval", 2*time.Second, "publish interval")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	riders := []int64{7, 8, 9}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ev := generateRandomEvent(riders)
			data, _ := json.Marshal(ev)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to publish event:", err)
				continue
			}
			log.Println("event published", ev.SuborderID, ev.Status)
		case <-ctx.Done():
			return
		}
	}
}
