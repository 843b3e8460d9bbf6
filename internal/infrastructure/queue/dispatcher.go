package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// MailJob is a single outbound message.
type MailJob struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the delivery backend the dispatcher drains into.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher routes mail jobs to a fixed set of workers using consistent
// hashing on the recipient, so messages to the same address keep their
// order. Delivery is fire-and-forget: failures are logged and counted, never
// surfaced to the enqueuer.
type Dispatcher struct {
	workers []chan MailJob
	mailer  Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan MailJob, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan MailJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a mail job to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(to, subject, body string) {
	i := d.shardIndex(to)
	d.workers[i] <- MailJob{To: to, Subject: subject, Body: body}
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan MailJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-ch:
			metrics.MailQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.mailer.Send(ctx, job.To, job.Subject, job.Body); err != nil {
				metrics.MailDeliveriesTotal.WithLabelValues("failed").Inc()
				d.log.Warn().Err(err).Str("to", job.To).Msg("mail delivery failed")
				continue
			}
			metrics.MailDeliveriesTotal.WithLabelValues("sent").Inc()
			d.log.Debug().Str("to", job.To).Msg("mail delivered")
		}
	}
}
