package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/handler"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/tracking"

	"github.com/segmentio/kafka-go"
)

// Публикует поездку водителя по прямой в топик локаций.
func main() {
	broker := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "driver-locations", "location topic")
	orderID := flag.String("order", "", "order id, must be ON_THE_WAY")
	driverID := flag.String("driver", "", "driver id assigned to the order")
	fromLat := flag.Float64("from-lat", 48.8566, "start latitude")
	fromLng := flag.Float64("from-lng", 2.3522, "start longitude")
	toLat := flag.Float64("to-lat", 48.8606, "destination latitude")
	toLng := flag.Float64("to-lng", 2.3376, "destination longitude")
	steps := flag.Int("steps", 20, "number of positions")
	interval := flag.Duration("interval", 500*time.Millisecond, "interval between positions")
	flag.Parse()

	if *orderID == "" || *driverID == "" {
		log.Fatal("-order and -driver are required")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*broker),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	from := entities.Coordinate{Lat: *fromLat, Lng: *fromLng}
	to := entities.Coordinate{Lat: *toLat, Lng: *toLng}
	path := append([]entities.Coordinate{from}, tracking.Interpolate(from, to, *steps)...)

	for c := range tracking.Simulate(ctx, path, *interval) {
		data, _ := json.Marshal(handler.LocationMessage{
			OrderID:  *orderID,
			DriverID: *driverID,
			Lat:      c.Lat,
			Lng:      c.Lng,
		})
		if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(*orderID), Value: data}); err != nil {
			log.Println("failed to write location:", err)
			continue
		}
		log.Printf("location sent %.5f,%.5f", c.Lat, c.Lng)
	}
}
