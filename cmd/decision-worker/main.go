package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/queue"
)

// decision-worker consumes reservation decision events from RabbitMQ and
// appends them to the audit log.  It runs as a separate process so the
// HTTP server keeps answering requests while the broker is down; the
// consumer reconnects on its own.
func main() {
    _ = godotenv.Load()

    if err := queue.StartDecisionConsumer(); err != nil {
        log.Fatalf("decision consumer stopped: %v", err)
    }
}
