package feed

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/bryan-buckman/foodmood/internal/database"
)

// Poller imports all sources on the stored polling interval.
type Poller struct {
	importer *Importer
	store    database.Store
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a background poller.
func NewPoller(store database.Store, client *http.Client) *Poller {
	return &Poller{
		importer: NewImporter(store, client),
		store:    store,
		stop:     make(chan struct{}),
	}
}

// Start begins the polling loop. The first import runs immediately.
func (p *Poller) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			interval, _ := p.store.GetPollingInterval()
			if interval < database.MinPollingIntervalMinutes {
				interval = database.MinPollingIntervalMinutes
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			go func() {
				select {
				case <-p.stop:
					cancel()
				case <-ctx.Done():
				}
			}()
			results, err := p.importer.ImportAll(ctx)
			cancel()

			if err != nil {
				log.Printf("Poller error: %v", err)
			} else {
				total := 0
				for _, n := range results {
					total += n
				}
				log.Printf("Poller: imported %d new posts from %d sources (next run in %dm)", total, len(results), interval)
			}

			select {
			case <-p.stop:
				return
			case <-time.After(time.Duration(interval) * time.Minute):
			}
		}
	}()
}

// Stop cancels any running import and waits for the loop to exit.
// Calling it more than once is safe.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	p.wg.Wait()
}
